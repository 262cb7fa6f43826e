package services

import (
	"context"
	"errors"
	"testing"

	"github.com/amnafatimaa/blog-app/internal/store"
	"github.com/amnafatimaa/blog-app/types"
)

type fakeUserRepo struct {
	users   map[string]types.User
	created []types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]types.User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (types.User, error) {
	user, ok := r.users[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if _, ok := r.users[user.Username]; ok {
		return types.User{}, store.ErrDuplicate
	}
	user.ID = len(r.users) + 1
	r.users[user.Username] = user
	r.created = append(r.created, user)
	return user, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "wonderland")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user ID to be assigned")
	}
	if user.PasswordHash == "wonderland" {
		t.Fatalf("password must not be stored in the clear")
	}
	if !checkPassword(user.PasswordHash, "wonderland") {
		t.Fatalf("stored hash does not verify the original password")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "alice", "other@example.com", "pw2")
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "wonderland")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "alice", "wonderland")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user id: %d", user.ID)
	}

	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody", "wonderland"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

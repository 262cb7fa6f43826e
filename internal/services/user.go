package services

import (
	"context"
	"errors"

	"github.com/amnafatimaa/blog-app/internal/store"
	"github.com/amnafatimaa/blog-app/types"
)

// ErrInvalidCredentials is returned when a login attempt names an unknown
// user or presents the wrong password. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (types.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Register hashes the password and persists a new user. A taken username
// surfaces as store.ErrDuplicate.
func (s *UserService) Register(ctx context.Context, username, email, password string) (types.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return types.User{}, err
	}
	return s.repo.Create(ctx, types.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

// Authenticate verifies a username/password pair and returns the matching
// user, or ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}
	if !checkPassword(user.PasswordHash, password) {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

package services

import (
	"context"
	"testing"

	"github.com/amnafatimaa/blog-app/types"
)

type fakePostRepo struct {
	lastOffset int
	lastLimit  int
}

func (r *fakePostRepo) List(ctx context.Context, offset, limit int) ([]types.Post, error) {
	r.lastOffset = offset
	r.lastLimit = limit
	return []types.Post{}, nil
}

func (r *fakePostRepo) Get(ctx context.Context, id int) (types.Post, error) {
	return types.Post{ID: id}, nil
}

func (r *fakePostRepo) Create(ctx context.Context, post types.Post) (types.Post, error) {
	post.ID = 1
	return post, nil
}

func (r *fakePostRepo) Update(ctx context.Context, id int, title, content string) (types.Post, error) {
	return types.Post{ID: id, Title: title, Content: content}, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id int) (types.Post, error) {
	return types.Post{ID: id}, nil
}

func TestListClampsPagination(t *testing.T) {
	cases := []struct {
		name       string
		skip       int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{name: "defaults", skip: 0, limit: 0, wantOffset: 0, wantLimit: 10},
		{name: "negative skip", skip: -5, limit: 10, wantOffset: 0, wantLimit: 10},
		{name: "over cap", skip: 20, limit: 1000, wantOffset: 20, wantLimit: 100},
		{name: "in range", skip: 3, limit: 7, wantOffset: 3, wantLimit: 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakePostRepo{}
			svc := NewPostService(repo)

			if _, err := svc.List(context.Background(), tc.skip, tc.limit); err != nil {
				t.Fatalf("list: %v", err)
			}
			if repo.lastOffset != tc.wantOffset || repo.lastLimit != tc.wantLimit {
				t.Fatalf("got offset=%d limit=%d, want offset=%d limit=%d",
					repo.lastOffset, repo.lastLimit, tc.wantOffset, tc.wantLimit)
			}
		})
	}
}

func TestCreateSetsAuthor(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	post, err := svc.Create(context.Background(), "T", "C", 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.AuthorID != 42 {
		t.Fatalf("unexpected author id: %d", post.AuthorID)
	}
	if post.Title != "T" || post.Content != "C" {
		t.Fatalf("unexpected post fields: %+v", post)
	}
}

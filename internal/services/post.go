package services

import (
	"context"

	"github.com/amnafatimaa/blog-app/types"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	List(ctx context.Context, offset, limit int) ([]types.Post, error)
	Get(ctx context.Context, id int) (types.Post, error)
	Create(ctx context.Context, post types.Post) (types.Post, error)
	Update(ctx context.Context, id int, title, content string) (types.Post, error)
	Delete(ctx context.Context, id int) (types.Post, error)
}

// PostService encapsulates post use-cases.
type PostService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) List(ctx context.Context, skip, limit int) ([]types.Post, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *PostService) Get(ctx context.Context, id int) (types.Post, error) {
	return s.repo.Get(ctx, id)
}

func (s *PostService) Create(ctx context.Context, title, content string, authorID int) (types.Post, error) {
	return s.repo.Create(ctx, types.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	})
}

func (s *PostService) Update(ctx context.Context, id int, title, content string) (types.Post, error) {
	return s.repo.Update(ctx, id, title, content)
}

func (s *PostService) Delete(ctx context.Context, id int) (types.Post, error) {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"fmt"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/repository"
)

var (
	ErrCaseNotFound  = repository.ErrCaseNotFound
	ErrPostNotFound  = repository.ErrPostNotFound
	ErrPostSlugTaken = repository.ErrPostSlugTaken
)

type ContentRepository interface {
	ListCases(ctx context.Context) ([]domain.Case, error)
	ListPublishedPosts(ctx context.Context) ([]domain.Post, error)
	FindPostBySlug(ctx context.Context, slug string) (domain.Post, error)
	CreatePost(ctx context.Context, post domain.Post) (domain.Post, error)
	CreateCase(ctx context.Context, c domain.Case) (domain.Case, error)
}

type ContentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{
		repo: repo,
	}
}

func (s *ContentService) ListCases(ctx context.Context) ([]domain.Case, error) {
	cases, err := s.repo.ListCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCases -> %w", err)
	}

	return cases, nil
}

// ListPublishedPosts returns published posts only. Drafts stay visible
// through the admin surface.
func (s *ContentService) ListPublishedPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.repo.ListPublishedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPublishedPosts -> %w", err)
	}

	return posts, nil
}

func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	post, err := s.repo.FindPostBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, fmt.Errorf("s.repo.FindPostBySlug -> %w", err)
	}

	return post, nil
}

func (s *ContentService) CreatePost(ctx context.Context, post domain.Post) (domain.Post, error) {
	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return domain.Post{}, fmt.Errorf("s.repo.CreatePost -> %w", err)
	}

	return created, nil
}

func (s *ContentService) CreateCase(ctx context.Context, c domain.Case) (domain.Case, error) {
	created, err := s.repo.CreateCase(ctx, c)
	if err != nil {
		return domain.Case{}, fmt.Errorf("s.repo.CreateCase -> %w", err)
	}

	return created, nil
}

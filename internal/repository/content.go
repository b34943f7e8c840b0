package repository

import (
	"context"
	"fmt"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/repository/dao"
)

var (
	ErrCaseNotFound  = dao.ErrCaseNotFound
	ErrPostNotFound  = dao.ErrPostNotFound
	ErrPostSlugTaken = dao.ErrPostSlugTaken
)

type ContentDAO interface {
	ListCases(ctx context.Context) ([]dao.Case, error)
	ListPublishedPosts(ctx context.Context) ([]dao.Post, error)
	FindPostBySlug(ctx context.Context, slug string) (dao.Post, error)
	InsertPost(ctx context.Context, post dao.Post) (dao.Post, error)
	InsertCase(ctx context.Context, c dao.Case) (dao.Case, error)
}

type ContentRepository struct {
	dao ContentDAO
}

func NewContentRepository(dao ContentDAO) *ContentRepository {
	return &ContentRepository{
		dao: dao,
	}
}

func (r *ContentRepository) ListCases(ctx context.Context) ([]domain.Case, error) {
	found, err := r.dao.ListCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCases -> %w", err)
	}

	cases := make([]domain.Case, 0, len(found))
	for _, c := range found {
		cases = append(cases, r.caseDaoToDomain(c))
	}

	return cases, nil
}

func (r *ContentRepository) ListPublishedPosts(ctx context.Context) ([]domain.Post, error) {
	found, err := r.dao.ListPublishedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPublishedPosts -> %w", err)
	}

	posts := make([]domain.Post, 0, len(found))
	for _, p := range found {
		posts = append(posts, r.postDaoToDomain(p))
	}

	return posts, nil
}

func (r *ContentRepository) FindPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	found, err := r.dao.FindPostBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, fmt.Errorf("r.dao.FindPostBySlug -> %w", err)
	}

	return r.postDaoToDomain(found), nil
}

func (r *ContentRepository) CreatePost(ctx context.Context, post domain.Post) (domain.Post, error) {
	created, err := r.dao.InsertPost(ctx, dao.Post{
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		Published:   post.Published,
		PublishedAt: post.PublishedAt,
	})
	if err != nil {
		return domain.Post{}, fmt.Errorf("r.dao.InsertPost -> %w", err)
	}

	return r.postDaoToDomain(created), nil
}

func (r *ContentRepository) CreateCase(ctx context.Context, c domain.Case) (domain.Case, error) {
	created, err := r.dao.InsertCase(ctx, dao.Case{
		Title:     c.Title,
		Type:      c.Type,
		Location:  c.Location,
		DateLabel: c.DateLabel,
		ShortText: c.ShortText,
		ImageURL:  c.ImageURL,
	})
	if err != nil {
		return domain.Case{}, fmt.Errorf("r.dao.InsertCase -> %w", err)
	}

	return r.caseDaoToDomain(created), nil
}

func (r *ContentRepository) caseDaoToDomain(c dao.Case) domain.Case {
	return domain.Case{
		ID:        c.ID,
		Title:     c.Title,
		Type:      c.Type,
		Location:  c.Location,
		DateLabel: c.DateLabel,
		ShortText: c.ShortText,
		ImageURL:  c.ImageURL,
	}
}

func (r *ContentRepository) postDaoToDomain(p dao.Post) domain.Post {
	return domain.Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
	}
}

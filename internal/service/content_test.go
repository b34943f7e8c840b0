package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlsproduction/nls-api/internal/domain"
)

type fakeContentRepository struct {
	cases []domain.Case
	posts []domain.Post
}

func (f *fakeContentRepository) ListCases(_ context.Context) ([]domain.Case, error) {
	return f.cases, nil
}

func (f *fakeContentRepository) ListPublishedPosts(_ context.Context) ([]domain.Post, error) {
	published := make([]domain.Post, 0)
	for _, p := range f.posts {
		if p.Published {
			published = append(published, p)
		}
	}

	return published, nil
}

func (f *fakeContentRepository) FindPostBySlug(_ context.Context, slug string) (domain.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}

	return domain.Post{}, ErrPostNotFound
}

func (f *fakeContentRepository) CreatePost(_ context.Context, post domain.Post) (domain.Post, error) {
	for _, existing := range f.posts {
		if existing.Slug == post.Slug {
			return domain.Post{}, ErrPostSlugTaken
		}
	}

	post.ID = uint(len(f.posts) + 1)
	f.posts = append(f.posts, post)

	return post, nil
}

func (f *fakeContentRepository) CreateCase(_ context.Context, c domain.Case) (domain.Case, error) {
	c.ID = uint(len(f.cases) + 1)
	f.cases = append(f.cases, c)

	return c, nil
}

func TestContentService_Posts(t *testing.T) {
	repo := &fakeContentRepository{}
	svc := NewContentService(repo)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, domain.Post{Title: "Rigging basics", Slug: "rigging-basics", Published: true})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.CreatePost(ctx, domain.Post{Title: "Draft", Slug: "draft-notes"})
	require.NoError(t, err)

	t.Run("duplicate slug", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, domain.Post{Title: "Again", Slug: "rigging-basics"})
		assert.ErrorIs(t, err, ErrPostSlugTaken)
	})

	t.Run("published listing hides drafts", func(t *testing.T) {
		posts, err := svc.ListPublishedPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "rigging-basics", posts[0].Slug)
	})

	t.Run("get by slug", func(t *testing.T) {
		post, err := svc.GetPostBySlug(ctx, "draft-notes")
		require.NoError(t, err)
		assert.Equal(t, "Draft", post.Title)

		_, err = svc.GetPostBySlug(ctx, "missing")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestContentService_Cases(t *testing.T) {
	repo := &fakeContentRepository{}
	svc := NewContentService(repo)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, domain.Case{Title: "Festival main stage", Type: "concert"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	cases, err := svc.ListCases(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, 1)
}

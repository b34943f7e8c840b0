package v1

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/service"
)

type fakeContentService struct {
	cases []domain.Case
	posts []domain.Post
}

func (f *fakeContentService) ListCases(_ context.Context) ([]domain.Case, error) {
	return f.cases, nil
}

func (f *fakeContentService) ListPublishedPosts(_ context.Context) ([]domain.Post, error) {
	published := make([]domain.Post, 0)
	for _, p := range f.posts {
		if p.Published {
			published = append(published, p)
		}
	}

	return published, nil
}

func (f *fakeContentService) GetPostBySlug(_ context.Context, slug string) (domain.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}

	return domain.Post{}, service.ErrPostNotFound
}

func newContentRouter(svc *fakeContentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewContentHandler(svc)
	router.GET("/api/cases", handler.HandleListCases)
	router.GET("/api/posts", handler.HandleListPosts)
	router.GET("/api/posts/:slug", handler.HandleGetPost)

	return router
}

func TestContentHandler_HandleListCases(t *testing.T) {
	router := newContentRouter(&fakeContentService{
		cases: []domain.Case{
			{ID: 1, Title: "Corporate summer day", Type: "corporate", Location: "Tallinn"},
		},
	})

	w := get(router, "/api/cases")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id":1,"title":"Corporate summer day","type":"corporate","location":"Tallinn"}]`,
		w.Body.String())
}

func TestContentHandler_HandleListPosts(t *testing.T) {
	publishedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	router := newContentRouter(&fakeContentService{
		posts: []domain.Post{
			{ID: 1, Title: "Choosing speakers", Slug: "choosing-speakers", Published: true, PublishedAt: &publishedAt},
			{ID: 2, Title: "Unfinished draft", Slug: "draft"},
		},
	})

	w := get(router, "/api/posts")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "choosing-speakers")
	assert.NotContains(t, w.Body.String(), "draft")
}

func TestContentHandler_HandleGetPost(t *testing.T) {
	router := newContentRouter(&fakeContentService{
		posts: []domain.Post{
			{ID: 1, Title: "Choosing speakers", Slug: "choosing-speakers", Published: true},
		},
	})

	t.Run("known slug", func(t *testing.T) {
		w := get(router, "/api/posts/choosing-speakers")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Choosing speakers"`)
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		w := get(router, "/api/posts/nope")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})
}

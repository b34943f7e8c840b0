package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlsproduction/nls-api/internal/api/handler/v1/response"
	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/service"
)

type ContentService interface {
	ListCases(ctx context.Context) ([]domain.Case, error)
	ListPublishedPosts(ctx context.Context) ([]domain.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (domain.Post, error)
}

type ContentHandler struct {
	svc ContentService
}

func NewContentHandler(svc ContentService) *ContentHandler {
	return &ContentHandler{
		svc: svc,
	}
}

// HandleListCases godoc
// @Summary      List portfolio cases
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Case
// @Failure      500  {object}  response.Err
// @Router       /api/cases [get]
func (h *ContentHandler) HandleListCases(ctx *gin.Context) {
	cases, err := h.svc.ListCases(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCases -> h.svc.ListCases -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, cases)
}

// HandleListPosts godoc
// @Summary      List published blog posts
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Post
// @Failure      500  {object}  response.Err
// @Router       /api/posts [get]
func (h *ContentHandler) HandleListPosts(ctx *gin.Context) {
	posts, err := h.svc.ListPublishedPosts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPosts -> h.svc.ListPublishedPosts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// HandleGetPost godoc
// @Summary      Get a blog post by slug
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "post slug"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/posts/{slug} [get]
func (h *ContentHandler) HandleGetPost(ctx *gin.Context) {
	slug := ctx.Param("slug")

	post, err := h.svc.GetPostBySlug(ctx.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("post", "slug", slug))
			return
		}

		err = fmt.Errorf("v1.HandleGetPost -> h.svc.GetPostBySlug -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, post)
}

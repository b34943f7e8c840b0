package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlsproduction/nls-api/internal/api/handler/v1/request"
	"github.com/nlsproduction/nls-api/internal/api/handler/v1/response"
	"github.com/nlsproduction/nls-api/internal/config"
	"github.com/nlsproduction/nls-api/internal/pkg/jwthelper"
	"github.com/nlsproduction/nls-api/internal/service"
)

// AdminCRUDService is one generic create/read/update/delete component
// driven by entity descriptors; there is no per-entity admin code.
type AdminCRUDService interface {
	NewRecord(entity string) (any, error)
	List(ctx context.Context, entity string) (any, error)
	Get(ctx context.Context, entity string, id uint) (any, error)
	Create(ctx context.Context, entity string, record any) (any, error)
	Update(ctx context.Context, entity string, id uint, record any) (any, error)
	Delete(ctx context.Context, entity string, id uint) error
}

type AdminAuthService interface {
	Login(password string) error
}

type AdminHandler struct {
	conf    *config.APIConfig
	svc     AdminCRUDService
	authSvc AdminAuthService
}

func NewAdminHandler(conf *config.APIConfig, svc AdminCRUDService, authSvc AdminAuthService) *AdminHandler {
	return &AdminHandler{
		conf:    conf,
		svc:     svc,
		authSvc: authSvc,
	}
}

// HandleLogin godoc
// @Summary      Exchange the admin password for a bearer token
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdminLoginRequest  true  "request body"
// @Success      200  {object}  response.LoginResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	req := request.AdminLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.authSvc.Login(req.Password); err != nil {
		response.RenderErr(ctx, response.ErrWrongCredentials(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), "admin", ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
	})
}

// HandleListEntity godoc
// @Summary      List all records of one entity
// @Tags         admin
// @Produce      json
// @Param        entity  path  string  true  "entity name"  Enums(products, packages, package-items, inquiries, cases, posts)
// @Success      200  {array}   object
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/api/{entity} [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleListEntity(ctx *gin.Context) {
	entity := ctx.Param("entity")

	list, err := h.svc.List(ctx.Request.Context(), entity)
	if err != nil {
		h.renderAdminErr(ctx, "HandleListEntity", entity, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// HandleGetEntity godoc
// @Summary      Get one record by ID
// @Tags         admin
// @Produce      json
// @Param        entity  path  string  true  "entity name"
// @Param        id      path  int     true  "record ID"
// @Success      200  {object}  object
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/api/{entity}/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetEntity(ctx *gin.Context) {
	entity := ctx.Param("entity")

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.svc.Get(ctx.Request.Context(), entity, id)
	if err != nil {
		h.renderAdminErr(ctx, "HandleGetEntity", entity, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// HandleCreateEntity godoc
// @Summary      Create one record
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        entity  path  string  true  "entity name"
// @Param        record  body  object  true  "record body"
// @Success      201  {object}  object
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/api/{entity} [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleCreateEntity(ctx *gin.Context) {
	entity := ctx.Param("entity")

	record, err := h.svc.NewRecord(entity)
	if err != nil {
		h.renderAdminErr(ctx, "HandleCreateEntity", entity, err)
		return
	}

	if err = ctx.ShouldBindJSON(record); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), entity, record)
	if err != nil {
		h.renderAdminErr(ctx, "HandleCreateEntity", entity, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEntity godoc
// @Summary      Update one record
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        entity  path  string  true  "entity name"
// @Param        id      path  int     true  "record ID"
// @Param        record  body  object  true  "record body"
// @Success      200  {object}  object
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/api/{entity}/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) HandleUpdateEntity(ctx *gin.Context) {
	entity := ctx.Param("entity")

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.svc.NewRecord(entity)
	if err != nil {
		h.renderAdminErr(ctx, "HandleUpdateEntity", entity, err)
		return
	}

	if err = ctx.ShouldBindJSON(record); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), entity, id, record)
	if err != nil {
		h.renderAdminErr(ctx, "HandleUpdateEntity", entity, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEntity godoc
// @Summary      Delete one record
// @Description  Deleting a package or product also removes its package items through the cascade constraints.
// @Tags         admin
// @Produce      json
// @Param        entity  path  string  true  "entity name"
// @Param        id      path  int     true  "record ID"
// @Success      204  {string}  string  "deleted"
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/api/{entity}/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) HandleDeleteEntity(ctx *gin.Context) {
	entity := ctx.Param("entity")

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), entity, id); err != nil {
		h.renderAdminErr(ctx, "HandleDeleteEntity", entity, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *AdminHandler) renderAdminErr(ctx *gin.Context, op, entity string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownEntity):
		response.RenderErr(ctx, response.ErrNotFound("entity", "name", entity))
	case errors.Is(err, service.ErrEntityNotFound):
		response.RenderErr(ctx, response.ErrNotFound(entity, "ID", ctx.Param("id")))
	case errors.Is(err, service.ErrEntityConflict), errors.Is(err, service.ErrMissingReference):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		err = fmt.Errorf("v1.%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

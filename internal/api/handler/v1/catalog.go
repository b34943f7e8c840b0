package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nlsproduction/nls-api/internal/api/handler/v1/response"
	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/service"
)

type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	ListPackages(ctx context.Context) ([]domain.Package, error)
	GetPackage(ctx context.Context, id uint) (domain.Package, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListProducts godoc
// @Summary      List rental products
// @Description  Returns all products, optionally filtered by category. An empty catalog yields an empty list.
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "category filter"
// @Success      200  {array}   response.ProductSummary
// @Failure      500  {object}  response.Err
// @Router       /api/products [get]
func (h *CatalogHandler) HandleListProducts(ctx *gin.Context) {
	category := ctx.Query("category")

	products, err := h.svc.ListProducts(ctx.Request.Context(), category)
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewProductSummaries(products))
}

// HandleGetProduct godoc
// @Summary      Get one product
// @Tags         catalog
// @Produce      json
// @Param        productID  path      int  true  "product ID"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/products/{productID} [get]
func (h *CatalogHandler) HandleGetProduct(ctx *gin.Context) {
	id, err := parseID(ctx.Param("productID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleListPackages godoc
// @Summary      List rental packages
// @Description  Returns all packages as summaries. An empty table yields an empty list.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   response.PackageSummary
// @Failure      500  {object}  response.Err
// @Router       /api/packages [get]
func (h *CatalogHandler) HandleListPackages(ctx *gin.Context) {
	packages, err := h.svc.ListPackages(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPackages -> h.svc.ListPackages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPackageSummaries(packages))
}

// HandleGetPackage godoc
// @Summary      Get one package with its items and products resolved
// @Tags         catalog
// @Produce      json
// @Param        packageID  path      int  true  "package ID"
// @Success      200  {object}  domain.Package
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/packages/{packageID} [get]
func (h *CatalogHandler) HandleGetPackage(ctx *gin.Context) {
	id, err := parseID(ctx.Param("packageID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	pkg, err := h.svc.GetPackage(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("package", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetPackage -> h.svc.GetPackage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, pkg)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid ID %q", raw)
	}

	return uint(id), nil
}

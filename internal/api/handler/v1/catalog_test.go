package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/service"
)

type fakeCatalogService struct {
	products []domain.Product
	packages []domain.Package
}

func (f *fakeCatalogService) ListProducts(_ context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		return f.products, nil
	}

	filtered := make([]domain.Product, 0)
	for _, p := range f.products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

func (f *fakeCatalogService) GetProduct(_ context.Context, id uint) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, service.ErrProductNotFound
}

func (f *fakeCatalogService) ListPackages(_ context.Context) ([]domain.Package, error) {
	return f.packages, nil
}

func (f *fakeCatalogService) GetPackage(_ context.Context, id uint) (domain.Package, error) {
	for _, p := range f.packages {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Package{}, service.ErrPackageNotFound
}

func newCatalogRouter(svc *fakeCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewCatalogHandler(svc)
	router.GET("/api/products", handler.HandleListProducts)
	router.GET("/api/products/:productID", handler.HandleGetProduct)
	router.GET("/api/packages", handler.HandleListPackages)
	router.GET("/api/packages/:packageID", handler.HandleGetPackage)

	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	return w
}

func TestCatalogHandler_HandleListProducts(t *testing.T) {
	t.Run("empty catalog yields an empty list, not an error", func(t *testing.T) {
		router := newCatalogRouter(&fakeCatalogService{})

		w := get(router, "/api/products")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns listing fields only", func(t *testing.T) {
		router := newCatalogRouter(&fakeCatalogService{
			products: []domain.Product{
				{ID: 1, Name: `Active Speaker 12"`, Category: "acoustics", DayRate: 25, Specs: "800W RMS", Stock: 6},
			},
		})

		w := get(router, "/api/products")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Active Speaker 12\"","category":"acoustics","day_rate":25}]`, w.Body.String())
	})

	t.Run("filters by category", func(t *testing.T) {
		router := newCatalogRouter(&fakeCatalogService{
			products: []domain.Product{
				{ID: 1, Name: "Speaker", Category: "acoustics", DayRate: 25},
				{ID: 2, Name: "Mixer", Category: "mixers", DayRate: 40},
			},
		})

		w := get(router, "/api/products?category=mixers")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":2,"name":"Mixer","category":"mixers","day_rate":40}]`, w.Body.String())
	})
}

func TestCatalogHandler_HandleGetProduct(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogService{
		products: []domain.Product{{ID: 7, Name: "Mixer", Category: "mixers", DayRate: 40}},
	})

	t.Run("found", func(t *testing.T) {
		w := get(router, "/api/products/7")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Mixer"`)
	})

	t.Run("missing product is 404", func(t *testing.T) {
		w := get(router, "/api/products/999")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		w := get(router, "/api/products/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_HandleListPackages(t *testing.T) {
	t.Run("empty table yields an empty list", func(t *testing.T) {
		router := newCatalogRouter(&fakeCatalogService{})

		w := get(router, "/api/packages")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns summaries", func(t *testing.T) {
		router := newCatalogRouter(&fakeCatalogService{
			packages: []domain.Package{
				{ID: 1, Title: "Speech Basic", BasePrice: 60},
				{ID: 2, Title: "Wedding Medium", BasePrice: 180},
			},
		})

		w := get(router, "/api/packages")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"title":"Speech Basic","base_price":60},{"id":2,"title":"Wedding Medium","base_price":180}]`, w.Body.String())
	})
}

func TestCatalogHandler_HandleGetPackage(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogService{
		packages: []domain.Package{
			{
				ID:        3,
				Title:     "Wedding Medium",
				BasePrice: 180,
				Items: []domain.PackageItem{
					{ID: 1, PackageID: 3, ProductID: 7, Quantity: 2, Product: &domain.Product{ID: 7, Name: "Mixer", Category: "mixers"}},
				},
			},
		},
	})

	t.Run("resolves items and products", func(t *testing.T) {
		w := get(router, "/api/packages/3")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quantity":2`)
		assert.Contains(t, w.Body.String(), `"name":"Mixer"`)
	})

	t.Run("missing package is 404", func(t *testing.T) {
		w := get(router, "/api/packages/999")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

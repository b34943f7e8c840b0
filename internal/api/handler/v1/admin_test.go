package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nlsproduction/nls-api/internal/config"
	"github.com/nlsproduction/nls-api/internal/repository/dao"
	"github.com/nlsproduction/nls-api/internal/service"
)

// fakeAdminStore keeps records per entity in insertion order.
type fakeAdminStore struct {
	descriptors map[string]dao.EntityDescriptor
	records     map[string][]any
}

func newFakeAdminStore() *fakeAdminStore {
	descriptors := make(map[string]dao.EntityDescriptor)
	for _, desc := range dao.Descriptors() {
		descriptors[desc.Name] = desc
	}

	return &fakeAdminStore{
		descriptors: descriptors,
		records:     make(map[string][]any),
	}
}

func (f *fakeAdminStore) Describe(entity string) (dao.EntityDescriptor, error) {
	desc, ok := f.descriptors[entity]
	if !ok {
		return dao.EntityDescriptor{}, dao.ErrUnknownEntity
	}

	return desc, nil
}

func (f *fakeAdminStore) List(_ context.Context, entity string) (any, error) {
	if _, ok := f.descriptors[entity]; !ok {
		return nil, dao.ErrUnknownEntity
	}

	return f.records[entity], nil
}

func (f *fakeAdminStore) FindByID(_ context.Context, entity string, id uint) (any, error) {
	if _, ok := f.descriptors[entity]; !ok {
		return nil, dao.ErrUnknownEntity
	}
	records := f.records[entity]
	if int(id) < 1 || int(id) > len(records) {
		return nil, dao.ErrEntityNotFound
	}

	return records[id-1], nil
}

func (f *fakeAdminStore) Insert(_ context.Context, entity string, record any) (any, error) {
	if _, ok := f.descriptors[entity]; !ok {
		return nil, dao.ErrUnknownEntity
	}
	f.records[entity] = append(f.records[entity], record)

	return record, nil
}

func (f *fakeAdminStore) Update(_ context.Context, entity string, id uint, record any) (any, error) {
	if _, err := f.FindByID(context.Background(), entity, id); err != nil {
		return nil, err
	}
	f.records[entity][id-1] = record

	return record, nil
}

func (f *fakeAdminStore) Delete(_ context.Context, entity string, id uint) error {
	if _, err := f.FindByID(context.Background(), entity, id); err != nil {
		return err
	}
	f.records[entity] = append(f.records[entity][:id-1], f.records[entity][id:]...)

	return nil
}

func newAdminRouter(t *testing.T) (*gin.Engine, *fakeAdminStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	conf := &config.APIConfig{
		JWTSigningKey:     "test-signing-key",
		AdminPasswordHash: string(hash),
	}

	store := newFakeAdminStore()
	handler := NewAdminHandler(conf, service.NewAdminService(store), service.NewAuthService(conf.AdminPasswordHash))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/login", handler.HandleLogin)
	router.GET("/admin/api/:entity", handler.HandleListEntity)
	router.POST("/admin/api/:entity", handler.HandleCreateEntity)
	router.GET("/admin/api/:entity/:id", handler.HandleGetEntity)
	router.PUT("/admin/api/:entity/:id", handler.HandleUpdateEntity)
	router.DELETE("/admin/api/:entity/:id", handler.HandleDeleteEntity)

	return router, store
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestAdminHandler_HandleLogin(t *testing.T) {
	router, _ := newAdminRouter(t)

	t.Run("correct password returns a token", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/admin/login", gin.H{"password": "secret1"})

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/admin/login", gin.H{"password": "nope"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password is 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/admin/login", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_CRUD(t *testing.T) {
	router, store := newAdminRouter(t)

	t.Run("unknown entity is 404", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/admin/api/gadgets", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create and read back a case", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/admin/api/cases", gin.H{
			"title":    "Wedding in Narva",
			"type":     "wedding",
			"location": "Narva",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, store.records["cases"], 1)

		w = doJSON(router, http.MethodGet, "/admin/api/cases/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Wedding in Narva")
	})

	t.Run("missing record is 404", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/admin/api/cases/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/admin/api/cases/1", nil)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, store.records["cases"])
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/admin/api/cases/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

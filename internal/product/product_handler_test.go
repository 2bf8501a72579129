package product_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-crm/internal/product"
	producterrors "go-crm/internal/product/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	createFn     func(ctx context.Context, organizationID string, req product.CreateProductRequest) (product.ProductResponse, error)
	getAllFn     func(ctx context.Context, organizationID string) ([]product.ProductResponse, error)
	getOptionsFn func(ctx context.Context, organizationID string) ([]product.ProductOption, error)
	getByIDFn    func(ctx context.Context, organizationID, id string) (product.ProductResponse, error)
	updateFn     func(ctx context.Context, organizationID, id string, req product.UpdateProductRequest) (product.ProductResponse, error)
	deleteFn     func(ctx context.Context, organizationID, id string) error
}

func (f *fakeProductService) Create(ctx context.Context, organizationID string, req product.CreateProductRequest) (product.ProductResponse, error) {
	return f.createFn(ctx, organizationID, req)
}
func (f *fakeProductService) GetAll(ctx context.Context, organizationID string) ([]product.ProductResponse, error) {
	return f.getAllFn(ctx, organizationID)
}
func (f *fakeProductService) GetOptions(ctx context.Context, organizationID string) ([]product.ProductOption, error) {
	return f.getOptionsFn(ctx, organizationID)
}
func (f *fakeProductService) GetByID(ctx context.Context, organizationID, id string) (product.ProductResponse, error) {
	return f.getByIDFn(ctx, organizationID, id)
}
func (f *fakeProductService) Update(ctx context.Context, organizationID, id string, req product.UpdateProductRequest) (product.ProductResponse, error) {
	return f.updateFn(ctx, organizationID, id, req)
}
func (f *fakeProductService) Delete(ctx context.Context, organizationID, id string) error {
	return f.deleteFn(ctx, organizationID, id)
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		orgID := uuid.NewString()
		svc := &fakeProductService{
			createFn: func(ctx context.Context, oid string, req product.CreateProductRequest) (product.ProductResponse, error) {
				assert.Equal(t, orgID, oid)
				return product.ProductResponse{ID: uuid.NewString(), Name: req.Name, UnitPrice: req.UnitPrice}, nil
			},
		}

		h := product.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Starter","unit_price":19.99}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("organization_id", orgID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "19.99")
	})

	t.Run("negative price", func(t *testing.T) {
		h := product.NewHandler(&fakeProductService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Starter","unit_price":-1}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := &fakeProductService{
			createFn: func(ctx context.Context, oid string, req product.CreateProductRequest) (product.ProductResponse, error) {
				return product.ProductResponse{}, producterrors.ErrProductAlreadyExists
			},
		}

		h := product.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Starter","unit_price":1}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestProductHandler_GetAll(t *testing.T) {
	svc := &fakeProductService{
		getAllFn: func(ctx context.Context, oid string) ([]product.ProductResponse, error) {
			return []product.ProductResponse{
				{Name: "Gold", UnitPrice: 300},
				{Name: "Bronze", UnitPrice: 100},
				{Name: "Silver", UnitPrice: 200},
			}, nil
		},
	}

	h := product.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/products?sort_by=unit_price&sort_dir=desc", nil)

	h.GetAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []product.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "Gold", body.Data[0].Name)
	assert.Equal(t, "Bronze", body.Data[2].Name)
}

func TestProductHandler_GetOptions(t *testing.T) {
	svc := &fakeProductService{
		getOptionsFn: func(ctx context.Context, oid string) ([]product.ProductOption, error) {
			return []product.ProductOption{{ID: "p-1", Name: "Gold", UnitPrice: 300}}, nil
		},
	}

	h := product.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/products/options", nil)

	h.GetOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Gold"`)
}

func TestProductHandler_Delete(t *testing.T) {
	svc := &fakeProductService{
		deleteFn: func(ctx context.Context, oid, id string) error { return producterrors.ErrProductNotFound },
	}

	h := product.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/products/x", nil)

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package organization_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-crm/internal/organization"
	organizationerrors "go-crm/internal/organization/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrganizationService struct {
	CreateFn   func(ctx context.Context, ownerID string, req organization.CreateOrganizationRequest) (*organization.OrganizationResponse, error)
	ListMineFn func(ctx context.Context, userID string) ([]organization.OrganizationResponse, error)
	GetByIDFn  func(ctx context.Context, userID, id string) (*organization.OrganizationResponse, error)
	UpdateFn   func(ctx context.Context, id string, req organization.UpdateOrganizationRequest) (*organization.OrganizationResponse, error)
	DeleteFn   func(ctx context.Context, userID, id string) error
}

func (f *fakeOrganizationService) Create(ctx context.Context, ownerID string, req organization.CreateOrganizationRequest) (*organization.OrganizationResponse, error) {
	return f.CreateFn(ctx, ownerID, req)
}
func (f *fakeOrganizationService) ListMine(ctx context.Context, userID string) ([]organization.OrganizationResponse, error) {
	return f.ListMineFn(ctx, userID)
}
func (f *fakeOrganizationService) GetByID(ctx context.Context, userID, id string) (*organization.OrganizationResponse, error) {
	return f.GetByIDFn(ctx, userID, id)
}
func (f *fakeOrganizationService) Update(ctx context.Context, id string, req organization.UpdateOrganizationRequest) (*organization.OrganizationResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeOrganizationService) Delete(ctx context.Context, userID, id string) error {
	return f.DeleteFn(ctx, userID, id)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("user_id", "user-1")
	return c, w
}

func TestOrganizationHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeOrganizationService{
			CreateFn: func(ctx context.Context, ownerID string, req organization.CreateOrganizationRequest) (*organization.OrganizationResponse, error) {
				assert.Equal(t, "user-1", ownerID)
				return &organization.OrganizationResponse{ID: "org-1", Name: req.Name, Role: "OWNER"}, nil
			},
		}
		h := organization.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/organizations", `{"name":"Acme"}`)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"OWNER"`)
	})

	t.Run("missing name", func(t *testing.T) {
		h := organization.NewHandler(&fakeOrganizationService{})
		c, w := newContext(http.MethodPost, "/organizations", `{}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := &fakeOrganizationService{
			CreateFn: func(ctx context.Context, ownerID string, req organization.CreateOrganizationRequest) (*organization.OrganizationResponse, error) {
				return nil, organizationerrors.ErrOrganizationAlreadyExists
			},
		}
		h := organization.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/organizations", `{"name":"Acme"}`)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestOrganizationHandler_List(t *testing.T) {
	svc := &fakeOrganizationService{
		ListMineFn: func(ctx context.Context, userID string) ([]organization.OrganizationResponse, error) {
			return []organization.OrganizationResponse{
				{ID: "1", Name: "Globex", Role: "SALES"},
				{ID: "2", Name: "Acme", Role: "OWNER"},
				{ID: "3", Name: "Initech", Role: "ADMIN"},
			}, nil
		},
	}
	h := organization.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/organizations?q=e&sort_dir=desc&page_size=2", "")

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []organization.OrganizationResponse `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Meta.Total)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Initech", body.Data[0].Name)
	assert.Equal(t, "Globex", body.Data[1].Name)
}

func TestOrganizationHandler_GetByID(t *testing.T) {
	svc := &fakeOrganizationService{
		GetByIDFn: func(ctx context.Context, userID, id string) (*organization.OrganizationResponse, error) {
			return nil, organizationerrors.ErrNotOrganizationMember
		},
	}
	h := organization.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/organizations/org-9", "")
	c.Params = gin.Params{{Key: "id", Value: "org-9"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrganizationHandler_Update(t *testing.T) {
	svc := &fakeOrganizationService{
		UpdateFn: func(ctx context.Context, id string, req organization.UpdateOrganizationRequest) (*organization.OrganizationResponse, error) {
			assert.Equal(t, "org-1", id)
			require.NotNil(t, req.City)
			assert.Nil(t, req.Name)
			return &organization.OrganizationResponse{ID: id, City: *req.City}, nil
		},
	}
	h := organization.NewHandler(svc)
	c, w := newContext(http.MethodPut, "/organizations/org-1", `{"city":"Bandung"}`)
	c.Params = gin.Params{{Key: "id", Value: "org-1"}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bandung")
}

func TestOrganizationHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &fakeOrganizationService{
			DeleteFn: func(ctx context.Context, userID, id string) error {
				assert.Equal(t, "user-1", userID)
				return nil
			},
		}
		h := organization.NewHandler(svc)
		c, w := newContext(http.MethodDelete, "/organizations/org-1", "")
		c.Params = gin.Params{{Key: "id", Value: "org-1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Organization deleted")
	})

	t.Run("not owner", func(t *testing.T) {
		svc := &fakeOrganizationService{
			DeleteFn: func(ctx context.Context, userID, id string) error {
				return organizationerrors.ErrNotOrganizationOwner
			},
		}
		h := organization.NewHandler(svc)
		c, w := newContext(http.MethodDelete, "/organizations/org-1", "")
		c.Params = gin.Params{{Key: "id", Value: "org-1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-crm/internal/contact"
	contacterrors "go-crm/internal/contact/errors"
	"go-crm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactService struct {
	CreateFn  func(ctx context.Context, organizationID, userID string, req contact.CreateContactRequest) (contact.ContactResponse, error)
	GetAllFn  func(ctx context.Context, organizationID string) ([]contact.ContactResponse, error)
	GetByIDFn func(ctx context.Context, organizationID, id string) (contact.ContactResponse, error)
	UpdateFn  func(ctx context.Context, organizationID, id string, req contact.UpdateContactRequest) (contact.ContactResponse, error)
	DeleteFn  func(ctx context.Context, organizationID, id string) error
}

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

func (f *fakeContactService) Create(ctx context.Context, organizationID, userID string, req contact.CreateContactRequest) (contact.ContactResponse, error) {
	return f.CreateFn(ctx, organizationID, userID, req)
}
func (f *fakeContactService) GetAll(ctx context.Context, organizationID string) ([]contact.ContactResponse, error) {
	return f.GetAllFn(ctx, organizationID)
}
func (f *fakeContactService) GetByID(ctx context.Context, organizationID, id string) (contact.ContactResponse, error) {
	return f.GetByIDFn(ctx, organizationID, id)
}
func (f *fakeContactService) Update(ctx context.Context, organizationID, id string, req contact.UpdateContactRequest) (contact.ContactResponse, error) {
	return f.UpdateFn(ctx, organizationID, id, req)
}
func (f *fakeContactService) Delete(ctx context.Context, organizationID, id string) error {
	return f.DeleteFn(ctx, organizationID, id)
}

func setupRouter(h *contact.Handler, orgID, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("organization_id", orgID)
		c.Set("user_id", userID)
		c.Next()
	})
	r.POST("/contacts", h.Create)
	r.GET("/contacts", h.GetAll)
	r.GET("/contacts/:id", h.GetByID)
	r.PUT("/contacts/:id", h.Update)
	r.DELETE("/contacts/:id", h.Delete)
	return r
}

func TestContactHandler_Create(t *testing.T) {
	orgID, userID := uuid.NewString(), uuid.NewString()

	t.Run("created", func(t *testing.T) {
		svc := &fakeContactService{
			CreateFn: func(ctx context.Context, oid, uid string, req contact.CreateContactRequest) (contact.ContactResponse, error) {
				assert.Equal(t, orgID, oid)
				assert.Equal(t, userID, uid)
				return contact.ContactResponse{ID: uuid.NewString(), Name: req.Name, LeadStatus: "LEAD"}, nil
			},
		}
		r := setupRouter(contact.NewHandler(svc), orgID, userID)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(`{"name":"Ana","email":"ana@acme.test","phone":"+62811"}`))
		req.Header.Set("Content-Type", "application/json")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		r := setupRouter(contact.NewHandler(&fakeContactService{}), orgID, userID)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(`{"name":"Ana","email":"nope","phone":"1"}`))
		req.Header.Set("Content-Type", "application/json")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &fakeContactService{
			CreateFn: func(ctx context.Context, oid, uid string, req contact.CreateContactRequest) (contact.ContactResponse, error) {
				return contact.ContactResponse{}, contacterrors.ErrContactEmailExists
			},
		}
		r := setupRouter(contact.NewHandler(svc), orgID, userID)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(`{"name":"Ana","email":"ana@acme.test","phone":"1"}`))
		req.Header.Set("Content-Type", "application/json")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestContactHandler_GetAll(t *testing.T) {
	svc := &fakeContactService{
		GetAllFn: func(ctx context.Context, oid string) ([]contact.ContactResponse, error) {
			return []contact.ContactResponse{
				{Name: "Cara", Company: "Acme", LeadStatus: "PROSPECT"},
				{Name: "Ben", Company: "Acme", LeadStatus: "PROSPECT"},
				{Name: "Dan", Company: "Acme", LeadStatus: "LEAD"},
				{Name: "Eve", Company: "Globex", LeadStatus: "PROSPECT"},
			}, nil
		},
	}
	r := setupRouter(contact.NewHandler(svc), uuid.NewString(), uuid.NewString())
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts?q=acme&status=prospect&page=1&page_size=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []contact.ContactResponse `json:"data"`
		Meta struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Ben", body.Data[0].Name)
}

func TestContactHandler_GetByID(t *testing.T) {
	svc := &fakeContactService{
		GetByIDFn: func(ctx context.Context, oid, id string) (contact.ContactResponse, error) {
			return contact.ContactResponse{}, contacterrors.ErrContactNotFound
		},
	}
	r := setupRouter(contact.NewHandler(svc), uuid.NewString(), uuid.NewString())
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_Update(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeContactService{
		UpdateFn: func(ctx context.Context, oid, cid string, req contact.UpdateContactRequest) (contact.ContactResponse, error) {
			assert.Equal(t, id, cid)
			require.NotNil(t, req.Notes)
			return contact.ContactResponse{ID: cid, Notes: *req.Notes}, nil
		},
	}
	r := setupRouter(contact.NewHandler(svc), uuid.NewString(), uuid.NewString())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/contacts/"+id, strings.NewReader(`{"notes":"call back friday"}`))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "call back friday")
}

func TestContactHandler_Delete(t *testing.T) {
	svc := &fakeContactService{
		DeleteFn: func(ctx context.Context, oid, id string) error { return nil },
	}
	r := setupRouter(contact.NewHandler(svc), uuid.NewString(), uuid.NewString())
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/contacts/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

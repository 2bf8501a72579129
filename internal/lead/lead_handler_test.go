package lead_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-crm/internal/lead"
	leaderrors "go-crm/internal/lead/errors"
	"go-crm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeLeadService struct {
	createFn       func(ctx context.Context, organizationID, userID string, req lead.CreateLeadRequest) (lead.LeadResponse, error)
	getAllFn       func(ctx context.Context, organizationID, status string) ([]lead.LeadResponse, error)
	getByIDFn      func(ctx context.Context, organizationID, id string) (lead.LeadResponse, error)
	updateFn       func(ctx context.Context, organizationID, id string, req lead.UpdateLeadRequest) (lead.LeadResponse, error)
	updateStatusFn func(ctx context.Context, organizationID, id string, req lead.UpdateLeadStatusRequest) (lead.LeadResponse, error)
	deleteFn       func(ctx context.Context, organizationID, id string) error
}

func (f *fakeLeadService) Create(ctx context.Context, organizationID, userID string, req lead.CreateLeadRequest) (lead.LeadResponse, error) {
	return f.createFn(ctx, organizationID, userID, req)
}
func (f *fakeLeadService) GetAll(ctx context.Context, organizationID, status string) ([]lead.LeadResponse, error) {
	return f.getAllFn(ctx, organizationID, status)
}
func (f *fakeLeadService) GetByID(ctx context.Context, organizationID, id string) (lead.LeadResponse, error) {
	return f.getByIDFn(ctx, organizationID, id)
}
func (f *fakeLeadService) Update(ctx context.Context, organizationID, id string, req lead.UpdateLeadRequest) (lead.LeadResponse, error) {
	return f.updateFn(ctx, organizationID, id, req)
}
func (f *fakeLeadService) UpdateStatus(ctx context.Context, organizationID, id string, req lead.UpdateLeadStatusRequest) (lead.LeadResponse, error) {
	return f.updateStatusFn(ctx, organizationID, id, req)
}
func (f *fakeLeadService) Delete(ctx context.Context, organizationID, id string) error {
	return f.deleteFn(ctx, organizationID, id)
}

func TestLeadHandler_Create(t *testing.T) {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	svc := &fakeLeadService{
		createFn: func(ctx context.Context, oid, uid string, req lead.CreateLeadRequest) (lead.LeadResponse, error) {
			assert.Equal(t, orgID, oid)
			assert.Equal(t, userID, uid)
			return lead.LeadResponse{ID: uuid.NewString(), OrganizationID: oid, Name: req.Name, LeadStatus: "LEAD"}, nil
		},
	}

	h := lead.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"name":"Budi","email":"budi@acme.test","phone":"+62812","source":"referral"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("organization_id", orgID)
	c.Set("user_id", userID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Success)
	var got lead.LeadResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Budi", got.Name)
}

func TestLeadHandler_GetAll(t *testing.T) {
	t.Run("passes status and sorts by name", func(t *testing.T) {
		svc := &fakeLeadService{
			getAllFn: func(ctx context.Context, oid, status string) ([]lead.LeadResponse, error) {
				assert.Equal(t, "PROSPECT", status)
				return []lead.LeadResponse{{Name: "Cici"}, {Name: "andi"}, {Name: "Budi"}}, nil
			},
		}

		h := lead.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leads?status=PROSPECT&sort_by=name&sort_dir=desc", nil)
		c.Set("organization_id", uuid.NewString())

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got []lead.LeadResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 3)
		assert.Equal(t, "Cici", got[0].Name)
		assert.Equal(t, "andi", got[2].Name)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := &fakeLeadService{
			getAllFn: func(ctx context.Context, oid, status string) ([]lead.LeadResponse, error) {
				return nil, leaderrors.ErrInvalidLeadStatus
			},
		}

		h := lead.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leads?status=WON", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeadHandler_UpdateStatus(t *testing.T) {
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeadService{
			updateStatusFn: func(ctx context.Context, oid, lid string, req lead.UpdateLeadStatusRequest) (lead.LeadResponse, error) {
				assert.Equal(t, id, lid)
				return lead.LeadResponse{ID: lid, LeadStatus: req.Status}, nil
			},
		}

		h := lead.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leads/"+id+"/status", strings.NewReader(`{"status":"CUSTOMER"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CUSTOMER")
	})

	t.Run("missing status", func(t *testing.T) {
		h := lead.NewHandler(&fakeLeadService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leads/"+id+"/status", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed lead", func(t *testing.T) {
		svc := &fakeLeadService{
			updateStatusFn: func(ctx context.Context, oid, lid string, req lead.UpdateLeadStatusRequest) (lead.LeadResponse, error) {
				return lead.LeadResponse{}, leaderrors.ErrLeadClosed
			},
		}

		h := lead.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leads/"+id+"/status", strings.NewReader(`{"status":"LEAD"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestLeadHandler_Delete(t *testing.T) {
	svc := &fakeLeadService{
		deleteFn: func(ctx context.Context, oid, id string) error { return leaderrors.ErrLeadHasSales },
	}

	h := lead.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/leads/x", nil)

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

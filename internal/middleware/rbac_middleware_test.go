package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-crm/internal/domain"
	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func rbacRouter(mw gin.HandlerFunc, userID, orgID string) *gin.Engine {
	r := gin.New()
	r.PUT("/organizations/:id",
		func(c *gin.Context) {
			if userID != "" {
				c.Set(middleware.ContextUserID, userID)
			}
			if orgID != "" {
				c.Set(middleware.ContextOrganizationID, orgID)
			}
			c.Next()
		},
		mw,
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRBACAuthorize(t *testing.T) {
	call := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/organizations/org-path", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		enf := &fakeEnforcer{allowed: true}
		w := call(rbacRouter(middleware.RBACAuthorize(enf, "lead", "read"), "u-1", "org-1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.EnforceRequest{UserID: "u-1", OrganizationID: "org-1", Resource: "lead", Action: "read"}, enf.got)
	})

	t.Run("denied lists the missing permission", func(t *testing.T) {
		enf := &fakeEnforcer{allowed: false}
		w := call(rbacRouter(middleware.RBACAuthorize(enf, "sale", "delete"), "u-1", "org-1"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "sale:delete")
	})

	t.Run("enforcer error hides details", func(t *testing.T) {
		enf := &fakeEnforcer{err: errors.New("pq: relation does not exist")}
		w := call(rbacRouter(middleware.RBACAuthorize(enf, "lead", "read"), "u-1", "org-1"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
	})

	t.Run("no organization", func(t *testing.T) {
		w := call(rbacRouter(middleware.RBACAuthorize(&fakeEnforcer{}, "lead", "read"), "u-1", ""))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("param variant uses the path organization", func(t *testing.T) {
		enf := &fakeEnforcer{allowed: true}
		w := call(rbacRouter(middleware.RBACAuthorizeParam(enf, "id", "organization", "update"), "u-1", "org-1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "org-path", enf.got.OrganizationID)
	})
}

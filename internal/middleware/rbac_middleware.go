package middleware

import (
	"net/http"

	"go-crm/internal/domain"
	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize checks resource:action for the caller in the token's active organization.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorize(c, service, c.GetString(ContextOrganizationID), resource, action)
	}
}

// RBACAuthorizeParam is RBACAuthorize for routes that address an organization
// by path parameter, e.g. /organizations/:id.
func RBACAuthorizeParam(service RBACService, param, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorize(c, service, c.Param(param), resource, action)
	}
}

func authorize(c *gin.Context, service RBACService, organizationID, resource, action string) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context")
		return
	}
	if organizationID == "" {
		response.Abort(c, http.StatusForbidden, "NO_ACTIVE_ORGANIZATION", "Select an organization before accessing this resource")
		return
	}

	allowed, err := service.Enforce(domain.EnforceRequest{
		UserID:         userID,
		OrganizationID: organizationID,
		Resource:       resource,
		Action:         action,
	})
	if err != nil {
		zap.L().Named("middleware.rbac").Error("rbac enforce failed",
			zap.String("user_id", userID),
			zap.String("organization_id", organizationID),
			zap.Error(err),
		)
		response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
		return
	}

	if !allowed {
		response.Error(c, http.StatusForbidden, "FORBIDDEN",
			"You do not have permission to access this resource",
			gin.H{"required": resource + ":" + action},
		)
		c.Abort()
		return
	}
	c.Next()
}

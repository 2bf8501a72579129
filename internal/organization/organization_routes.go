package organization

import (
	"go-crm/internal/domain"
	"go-crm/internal/middleware"
	"go-crm/internal/rbac"
	"go-crm/internal/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts /organizations. These routes address an organization
// by path, so they do not require an active organization in the token.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens security.TokenService,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	orgs := r.Group("/organizations")
	orgs.Use(middleware.AuthMiddleware(tokens))
	orgs.Use(middleware.ContextLogger(logger))
	{
		orgs.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RequireUserType(domain.UserTypeOwner),
			handler.Create,
		)

		orgs.GET("",
			middleware.RateLimitByUser(2, 10),
			handler.List,
		)

		orgs.GET("/:id",
			middleware.RateLimitByUser(2, 10),
			handler.GetByID,
		)

		orgs.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorizeParam(rbacService, "id", rbac.ResourceOrganization, rbac.ActionUpdate),
			handler.Update,
		)

		orgs.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequireUserType(domain.UserTypeOwner),
			handler.Delete,
		)
	}
}

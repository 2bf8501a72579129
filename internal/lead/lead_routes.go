package lead

import (
	"go-crm/internal/middleware"
	"go-crm/internal/rbac"
	"go-crm/internal/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens security.TokenService,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	leads := r.Group("/leads")
	leads.Use(middleware.AuthMiddleware(tokens))
	leads.Use(middleware.ContextLogger(logger))
	leads.Use(middleware.RequireOrganization())
	{
		leads.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLead, rbac.ActionRead),
			handler.GetAll,
		)

		leads.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLead, rbac.ActionRead),
			handler.GetByID,
		)

		leads.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLead, rbac.ActionCreate),
			handler.Create,
		)

		leads.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLead, rbac.ActionUpdate),
			handler.Update,
		)

		leads.PATCH("/:id/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLead, rbac.ActionUpdate),
			handler.UpdateStatus,
		)

		leads.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLead, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

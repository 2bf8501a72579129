package contact

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
	contacts := r.Group("/contacts")
	contacts.Use(middleware.AuthMiddleware(tokens))
	contacts.Use(middleware.ContextLogger(logger))
	contacts.Use(middleware.RequireOrganization())
	{
		contacts.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContact, rbac.ActionRead),
			handler.GetAll,
		)

		contacts.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContact, rbac.ActionRead),
			handler.GetByID,
		)

		contacts.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContact, rbac.ActionCreate),
			handler.Create,
		)

		contacts.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContact, rbac.ActionUpdate),
			handler.Update,
		)

		contacts.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContact, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

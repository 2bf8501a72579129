package user

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
	tenant := []gin.HandlerFunc{
		middleware.AuthMiddleware(tokens),
		middleware.ContextLogger(logger),
		middleware.RequireOrganization(),
	}

	users := r.Group("/users")
	users.Use(tenant...)
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead),
			handler.GetByID,
		)

		users.PUT("/:id/role",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionUpdate),
			handler.ChangeRole,
		)
	}

	deleteUser := r.Group("/delete-user")
	deleteUser.Use(tenant...)
	deleteUser.DELETE("/:id",
		middleware.RateLimitByUser(0.1, 1),
		middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionDelete),
		handler.Delete,
	)
}

package product

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
	products := r.Group("/products")
	products.Use(middleware.AuthMiddleware(tokens))
	products.Use(middleware.ContextLogger(logger))
	products.Use(middleware.RequireOrganization())
	{
		products.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProduct, rbac.ActionRead),
			handler.GetAll,
		)

		products.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProduct, rbac.ActionRead),
			handler.GetOptions,
		)

		products.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProduct, rbac.ActionRead),
			handler.GetByID,
		)

		products.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProduct, rbac.ActionCreate),
			handler.Create,
		)

		products.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProduct, rbac.ActionUpdate),
			handler.Update,
		)

		products.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProduct, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package sale

import (
	"go-crm/internal/middleware"
	"go-crm/internal/rbac"
	"go-crm/internal/security"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens security.TokenService,
	rbacService middleware.RBACService,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware(tokens))
	sales.Use(middleware.ContextLogger(logger))
	sales.Use(middleware.RequireOrganization())
	{
		sales.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSale, rbac.ActionRead),
			handler.GetAll,
		)

		sales.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSale, rbac.ActionRead),
			handler.GetByID,
		)

		create := []gin.HandlerFunc{
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSale, rbac.ActionCreate),
		}
		if redisClient != nil {
			create = append(create, middleware.ExtractUserID(), middleware.Idempotency(redisClient))
		}
		sales.POST("", append(create, handler.Create)...)

		sales.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSale, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package rbac

import (
	"go-crm/internal/middleware"
	"go-crm/internal/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens security.TokenService,
	logger *zap.Logger,
) {
	r.GET("/roles",
		middleware.AuthMiddleware(tokens),
		middleware.ContextLogger(logger),
		handler.ListRoles,
	)

	r.GET("/me/permissions",
		middleware.AuthMiddleware(tokens),
		middleware.ContextLogger(logger),
		middleware.RequireOrganization(),
		handler.MyPermissions,
	)
}

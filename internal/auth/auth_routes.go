package auth

import (
	"go-crm/internal/middleware"
	"go-crm/internal/rbac"
	"go-crm/internal/security"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens security.TokenService,
	rbacService middleware.RBACService,
	loginLimiter *middleware.FixedWindowLimiter,
	throttle *redis_rate.Limiter,
	logger *zap.Logger,
) {
	signupLimit := middleware.RateLimitRedisByIP(throttle, "signup", redis_rate.PerMinute(5))
	emailLimit := middleware.RateLimitRedisByIP(throttle, "auth_email", redis_rate.PerMinute(3))

	r.POST("/signup", signupLimit, handler.SignupUser)
	r.POST("/owner/signup", signupLimit, handler.SignupOwner)
	r.POST("/admin/signup", signupLimit, handler.SignupAdmin)

	r.POST("/login", middleware.RateLimitFixedWindow(loginLimiter), handler.Login)

	r.GET("/verify", handler.Verify)
	r.POST("/reverify", emailLimit, handler.Reverify)
	r.POST("/forgot-password", emailLimit, handler.ForgotPassword)
	r.PUT("/reset-password/:id", middleware.RateLimitByIP(1, 5), handler.ResetPassword)

	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(tokens))
	authed.Use(middleware.ContextLogger(logger))
	{
		authed.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		authed.PUT("/change-password/:id", middleware.RateLimitByUser(0.2, 3), handler.ChangePassword)
		authed.POST("/select-organization", middleware.RateLimitByUser(1, 5), handler.SelectOrganization)
		authed.POST("/invite-user",
			middleware.RequireOrganization(),
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionInvite),
			handler.InviteUser,
		)
	}
}

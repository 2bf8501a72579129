package app

import (
	"context"

	"go-crm/internal/auth"
	"go-crm/internal/config"
	"go-crm/internal/contact"
	"go-crm/internal/department"
	"go-crm/internal/lead"
	"go-crm/internal/messaging/kafka"
	"go-crm/internal/middleware"
	"go-crm/internal/notification"
	"go-crm/internal/organization"
	"go-crm/internal/product"
	"go-crm/internal/rbac"
	"go-crm/internal/sale"
	"go-crm/internal/security"
	"go-crm/internal/shared/counter"
	"go-crm/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	infra *infrastructure,
	notifier notification.Notifier,
	logger *zap.Logger,
) error {
	db := infra.sqlDB
	gormDB := infra.gormDB
	rdb := infra.rdb

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	contactRepo := contact.NewRepository(gormDB)
	leadRepo := lead.NewRepository(gormDB)
	productRepo := product.NewRepository(gormDB)
	saleRepo := sale.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.SeedRoles(context.Background()); err != nil {
		return err
	}

	tokens := security.NewTokenService(cfg.JWTSecret)
	loginLimiter := middleware.NewFixedWindowLimiter(rdb, "login", cfg.LoginRateLimit, cfg.LoginRateWindow)
	throttle := redis_rate.NewLimiter(rdb)

	// --- Services ---
	authService := auth.NewService(db, authRepo, tokens, notifier, outboxRepo, auth.Config{
		AccessTokenTTL: cfg.AccessTokenTTL,
	}, logger)
	organizationService := organization.NewService(db, organizationRepo, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	userService := user.NewService(db, userRepo, logger)
	contactService := contact.NewService(db, contactRepo, logger)
	leadService := lead.NewService(db, leadRepo, logger)
	productService := product.NewService(db, productRepo, rdb, logger)
	saleService := sale.NewService(db, saleRepo, counterRepo, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.HandlerConfig{
		VerifyRedirectURL: cfg.VerifyRedirectURL,
	}, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	organizationHandler := organization.NewHandler(organizationService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	userHandler := user.NewHandler(userService, logger)
	contactHandler := contact.NewHandler(contactService, logger)
	leadHandler := lead.NewHandler(leadService, logger)
	productHandler := product.NewHandler(productService, logger)
	saleHandler := sale.NewHandlerWithRedis(saleService, rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, tokens, rbacService, loginLimiter, throttle, logger)
		rbac.RegisterRoutes(api, rbacHandler, tokens, logger)
		organization.RegisterRoutes(api, organizationHandler, tokens, rbacService, logger)
		department.RegisterRoutes(api, departmentHandler, tokens, rbacService, logger)
		user.RegisterRoutes(api, userHandler, tokens, rbacService, logger)
		contact.RegisterRoutes(api, contactHandler, tokens, rbacService, logger)
		lead.RegisterRoutes(api, leadHandler, tokens, rbacService, logger)
		product.RegisterRoutes(api, productHandler, tokens, rbacService, logger)
		sale.RegisterRoutes(api, saleHandler, tokens, rbacService, logger, rdb)
	}

	return nil
}

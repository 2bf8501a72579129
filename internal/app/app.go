package app

import (
	"context"
	"database/sql"
	"net/http"

	"go-crm/internal/config"
	"go-crm/internal/middleware"
	"go-crm/internal/notification"
	"go-crm/internal/shared/connection"
	"go-crm/internal/shared/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func (i *infrastructure) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DatabaseURL, connectRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects the API's dependencies and mounts every route on router.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	infra := &infrastructure{gormDB: gormDB, sqlDB: sqlDB}

	if cfg.RunMigrations {
		if err := database.RunMigrations(sqlDB, "up"); err != nil {
			infra.Close()
			return nil, err
		}
		version, dirty, _ := database.MigrationVersion(sqlDB)
		logger.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	}

	infra.rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}

	notifier, err := newNotifier(context.Background(), cfg, logger)
	if err != nil {
		infra.Close()
		return nil, err
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Idempotency-Key"},
		ExposeHeaders:    []string{"Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := registerModules(router, cfg, infra, notifier, logger); err != nil {
		infra.Close()
		return nil, err
	}

	return infra.Close, nil
}

// newNotifier picks the email transport named by EMAIL_PROVIDER.
func newNotifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) (notification.Notifier, error) {
	var sender notification.Sender
	switch cfg.EmailProvider {
	case "ses":
		ses, err := notification.NewSESSenderFromEnv(ctx, cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			return nil, err
		}
		sender = ses
	default:
		sender = notification.NewLogSender(logger)
	}
	return notification.NewNotifier(sender, cfg.AppBaseURL, logger), nil
}

// Command migrate applies or rolls back the embedded schema migrations.
//
//	migrate up
//	migrate down
package main

import (
	"fmt"
	"os"

	"go-crm/internal/bootstrap"
	"go-crm/internal/config"
	"go-crm/internal/shared/connection"
	"go-crm/internal/shared/database"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down")
		os.Exit(2)
	}
	direction := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := bootstrap.NewLogger(cfg)
	defer logger.Sync()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DatabaseURL, 5)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, direction); err != nil {
		logger.Fatal("run migrations failed", zap.String("direction", direction), zap.Error(err))
	}

	version, dirty, err := database.MigrationVersion(sqlDB)
	if err != nil {
		logger.Fatal("read migration version failed", zap.Error(err))
	}
	logger.Info("migrations complete",
		zap.String("direction", direction),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
}

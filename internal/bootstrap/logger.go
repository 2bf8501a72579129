package bootstrap

import (
	"go-crm/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process logger and installs it as zap's global.
func NewLogger(cfg *config.Config) *zap.Logger {
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger.With(zap.String("env", cfg.Environment))
}

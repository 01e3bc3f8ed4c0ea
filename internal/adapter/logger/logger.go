package logger

import (
	"github.com/valdes557/digitalmarket/internal/adapter/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "digitalmarket"

// NewLogger builds the process logger. Development mode gets colored
// console output; anything else gets production JSON with the service name
// stamped on every entry, so aggregated logs can be told apart from the
// rest of the marketplace. An unknown level falls back to info rather than
// refusing to start.
func NewLogger(conf *config.App) *zap.Logger {
	lvl, parseErr := zap.ParseAtomicLevel(conf.LogLevel)
	if parseErr != nil {
		lvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	var logger *zap.Logger
	if conf.Mode == config.AppModeDevelop {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = lvl
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger = zap.Must(cfg.Build())
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = lvl
		cfg.InitialFields = map[string]interface{}{"service": serviceName}
		logger = zap.Must(cfg.Build())
	}

	if parseErr != nil {
		logger.Warn("unknown log level, using info", zap.String("level", conf.LogLevel))
	}

	return logger
}

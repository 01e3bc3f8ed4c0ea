package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valdes557/digitalmarket/internal/adapter/config"
	"github.com/valdes557/digitalmarket/internal/adapter/logger"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		conf        config.App
		expEnabled  zapcore.Level
		expDisabled zapcore.Level
	}{
		{
			name:        "Develop mode at debug",
			conf:        config.App{Mode: config.AppModeDevelop, LogLevel: "debug"},
			expEnabled:  zapcore.DebugLevel,
			expDisabled: zapcore.Level(-2),
		},
		{
			name:        "Production mode at warn",
			conf:        config.App{Mode: config.AppModeProduction, LogLevel: "warn"},
			expEnabled:  zapcore.WarnLevel,
			expDisabled: zapcore.InfoLevel,
		},
		{
			name:        "Unknown level falls back to info",
			conf:        config.App{Mode: config.AppModeProduction, LogLevel: "chatty"},
			expEnabled:  zapcore.InfoLevel,
			expDisabled: zapcore.DebugLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log := logger.NewLogger(&tc.conf)

			require.NotNil(t, log)
			assert.True(t, log.Core().Enabled(tc.expEnabled))
			assert.False(t, log.Core().Enabled(tc.expDisabled))
		})
	}
}

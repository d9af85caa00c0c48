package observ

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		level string
		want  zapcore.Level
	}{
		{name: "production debug", env: "production", level: "debug", want: zapcore.DebugLevel},
		{name: "development warn", env: "development", level: "warn", want: zapcore.WarnLevel},
		{name: "unknown level falls back to info", env: "development", level: "chatty", want: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.env, tt.level)
			require.NoError(t, err)
			require.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				require.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "8081", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, int64(1), cfg.CallerUserID)
	require.Empty(t, cfg.JWTSecret)
	require.True(t, cfg.SeedDemo)
	require.Equal(t, 1, cfg.ReplyDepth)
	require.Equal(t, 100, cfg.MessageLimitMax)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CALLER_USER_ID", "3")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("SEED_FILE", "/etc/huddle/seed.yaml")
	t.Setenv("REPLY_DEPTH", "4")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, int64(3), cfg.CallerUserID)
	require.False(t, cfg.SeedDemo)
	require.Equal(t, "/etc/huddle/seed.yaml", cfg.SeedFile)
	require.Equal(t, 4, cfg.ReplyDepth)
	require.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "caller id zero", key: "CALLER_USER_ID", value: "0"},
		{name: "caller id not a number", key: "CALLER_USER_ID", value: "sarah"},
		{name: "reply depth zero", key: "REPLY_DEPTH", value: "0"},
		{name: "message limit zero", key: "MESSAGE_LIMIT_MAX", value: "0"},
		{name: "bad duration", key: "SHUTDOWN_TIMEOUT", value: "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig()
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10, cfg.Store.ActivityRetention)
	assert.True(t, cfg.Store.SeedDemoData)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ACTIVITY_RETENTION", "25")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("AVATAR_SEED", "42")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Equal(t, 25, cfg.Store.ActivityRetention)
	assert.False(t, cfg.Store.SeedDemoData)
	assert.Equal(t, int64(42), cfg.Store.AvatarSeed)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("ACTIVITY_RETENTION", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ACTIVITY_RETENTION", "0")
	_, err = Load()
	assert.Error(t, err)
}

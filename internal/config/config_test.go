package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "nexture")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, IsMissingRequired(err))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_TTL", "")
	t.Setenv("REDIS_KEY_PREFIX", "")
	t.Setenv("WS_ALLOWED_ORIGINS", "")
	t.Setenv("CATALOG_BOARD_URL", "")
	t.Setenv("ANALYTICS_TOP_SKILLS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.App.MigrationsDir)
	assert.Empty(t, cfg.App.AllowedOrigins)
	assert.True(t, cfg.App.AutoMigrate)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "nexture:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 10, cfg.Matching.TopSkills)
	assert.Empty(t, cfg.Catalog.BoardURL)
	assert.Equal(t, "0 */6 * * *", cfg.Scheduler.ImportSchedule)
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("PIPELINE_WORKERS", "many")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.False(t, IsMissingRequired(err))
	assert.Contains(t, err.Error(), "PIPELINE_WORKERS")
	assert.Contains(t, err.Error(), "DB_CONNECT_TIMEOUT")
}

func TestLoad_Lists(t *testing.T) {
	setRequired(t)
	t.Setenv("WS_ALLOWED_ORIGINS", " https://app.nexture.dev, ,http://localhost:5173 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.nexture.dev", "http://localhost:5173"}, cfg.App.AllowedOrigins)
}

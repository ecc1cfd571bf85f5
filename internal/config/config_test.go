package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"STORAGE_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_KEY_PREFIX",
		"SERVER_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "MEDIA_BASE_PATH", "CATALOG_PATH",
		"GAME_ITEM_TIME_LIMIT", "GAME_ORDER_TIME_LIMIT", "TIMEZONE",
	} {
		t.Setenv(key, env[key])
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"STORAGE_DRIVER": "memory"})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "./media", cfg.Media.BasePath)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, 45*time.Second, cfg.Game.ItemTimeLimit)
	assert.Equal(t, 120*time.Second, cfg.Game.OrderTimeLimit)
	assert.Equal(t, "Asia/Seoul", cfg.Location.String())
}

func TestLoad_MySQL(t *testing.T) {
	setEnv(t, map[string]string{
		"DB_HOST":     "localhost",
		"DB_PORT":     "3306",
		"DB_USER":     "nurse",
		"DB_PASSWORD": "secret",
		"DB_NAME":     "nursing",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, StorageDriverMySQL, cfg.Storage.Driver)
	assert.Equal(t, "nurse:secret@tcp(localhost:3306)/nursing?parseTime=true&charset=utf8mb4", cfg.DSN())
}

func TestLoad_Redis(t *testing.T) {
	setEnv(t, map[string]string{
		"STORAGE_DRIVER": "redis",
		"REDIS_HOST":     "cache",
		"REDIS_DB":       "2",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "nursingskill:", cfg.Redis.KeyPrefix)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"STORAGE_DRIVER":        "memory",
		"SERVER_PORT":           "9090",
		"CORS_ALLOWED_ORIGINS":  "http://localhost:3000, ,http://127.0.0.1:3000",
		"GAME_ITEM_TIME_LIMIT":  "30",
		"GAME_ORDER_TIME_LIMIT": "2m",
		"TIMEZONE":              "UTC",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Game.ItemTimeLimit)
	assert.Equal(t, 2*time.Minute, cfg.Game.OrderTimeLimit)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database host", env: map[string]string{}},
		{name: "invalid database port", env: map[string]string{"DB_HOST": "db", "DB_PORT": "x"}},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{name: "invalid server port", env: map[string]string{"STORAGE_DRIVER": "memory", "SERVER_PORT": "abc"}},
		{name: "invalid time limit", env: map[string]string{"STORAGE_DRIVER": "memory", "GAME_ITEM_TIME_LIMIT": "soon"}},
		{name: "too short time limit", env: map[string]string{"STORAGE_DRIVER": "memory", "GAME_ORDER_TIME_LIMIT": "10ms"}},
		{name: "invalid timezone", env: map[string]string{"STORAGE_DRIVER": "memory", "TIMEZONE": "Mars/Olympus"}},
		{name: "invalid redis port", env: map[string]string{"STORAGE_DRIVER": "redis", "REDIS_PORT": "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, 30, cfg.Audit.RetentionDays)
	assert.Equal(t, "0 3 * * *", cfg.Audit.CleanupSchedule)
	assert.Equal(t, 1, cfg.Tasks.Workers)
	assert.False(t, cfg.Demo.ReadOnly)
	assert.Equal(t, "demo-password", cfg.Demo.Password)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=localhost dbname=cards")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://cards.example.com , ,https://admin.example.com")
	t.Setenv("AUDIT_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DEMO_READ_ONLY", "true")

	cfg := NewConfig()

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=cards", cfg.Database.DSN)
	assert.Equal(t, []string{"https://cards.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Demo.ReadOnly)
}

func TestNewConfigWithFlags(t *testing.T) {
	t.Run("explicit flags override the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")

		flags := ServeFlags()
		require.NoError(t, flags.Parse([]string{"--port", "7070", "--database-path", "/tmp/cards.db"}))

		cfg, err := NewConfigWithFlags(flags)
		require.NoError(t, err)

		assert.Equal(t, int32(7070), cfg.HTTP.Port)
		assert.Equal(t, "/tmp/cards.db", cfg.Database.Path)
	})

	t.Run("unset flags keep environment values", func(t *testing.T) {
		t.Setenv("HOST", "127.0.0.1")

		flags := ServeFlags()
		require.NoError(t, flags.Parse(nil))

		cfg, err := NewConfigWithFlags(flags)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
		assert.Equal(t, int32(8080), cfg.HTTP.Port)
	})
}

package config_test

import (
	"testing"

	"github.com/jhoicas/recetario/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverFile, cfg.Store.Driver)
	assert.Equal(t, "es", cfg.App.Locale)
	assert.Equal(t, "EUR", cfg.App.Currency)
	assert.True(t, cfg.Store.SeedDefaults)
	assert.NotEmpty(t, cfg.Store.Path)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("STORE_PATH", "/tmp/x.db")
	t.Setenv("CURRENCY", "cop")
	t.Setenv("SEED_DEFAULTS", "false")
	t.Setenv("DB_PORT", "6543")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
	assert.Equal(t, "COP", cfg.App.Currency)
	assert.False(t, cfg.Store.SeedDefaults)
	assert.Equal(t, 6543, cfg.DB.Port)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STORE_DRIVER", "redis")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:word", DBName: "recetario", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aword@db:5432/recetario?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

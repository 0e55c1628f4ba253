package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "crm-api", cfg.App.Name)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "*", cfg.HTTP.CORSAllowOrigins)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "SQLite")
	v.Set("SQLITE_PATH", ":memory:")
	v.Set("DB_AUTO_MIGRATE", "true")
	v.Set("HTTP_PORT", "9090")
	v.Set("LOG_LEVEL", "debug")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.SQLitePath)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestGetInt_ValorNoNumerico(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "abc")
	assert.Equal(t, 8080, getInt(v, "HTTP_PORT", 8080))
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "crm", Password: "p@ss:w/rd", DBName: "crm", SSLMode: "disable"}
	dsn := c.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd")
	assert.Contains(t, dsn, "db:5432/crm?sslmode=disable")

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

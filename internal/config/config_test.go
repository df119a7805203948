package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                "3000",
		DBMaxOpenConns:      10,
		DBMaxIdleConns:      10,
		DBSchemaMode:        "hybrid",
		Env:                 "development",
		TracingSamplerRatio: 1,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Defaults", func(*Config) {}, false},
		{"Empty port", func(c *Config) { c.Port = "" }, true},
		{"Zero pool size", func(c *Config) { c.DBMaxOpenConns = 0 }, true},
		{"Negative idle", func(c *Config) { c.DBMaxIdleConns = -1 }, true},
		{"Unknown schema mode", func(c *Config) { c.DBSchemaMode = "magic" }, true},
		{"SQL schema mode", func(c *Config) { c.DBSchemaMode = "sql" }, false},
		{"Sampler ratio too high", func(c *Config) { c.TracingSamplerRatio = 1.5 }, true},
		{"Production without password", func(c *Config) { c.Env = "production" }, true},
		{"Production with password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "s3cret"
			c.DBSSLMode = "require"
		}, false},
		{"Prod alias without password", func(c *Config) { c.Env = "prod" }, true},
		{"Demo data in production", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "s3cret"
			c.SeedDemoData = true
		}, true},
		{"Demo data in development", func(c *Config) { c.SeedDemoData = true }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	for _, key := range []string{"PORT", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, "localhost", c.DBHost)
	assert.Equal(t, "root", c.DBUser)
	assert.Equal(t, "codebook", c.DBName)
	assert.Equal(t, 10, c.DBMaxOpenConns)
	assert.Equal(t, "hybrid", c.DBSchemaMode)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer viper.Reset()

	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "8088")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_SSLMODE", "  DISABLE  ")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", c.Port)
	assert.Equal(t, "db.internal", c.DBHost)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, 4, c.DBMaxOpenConns)
}

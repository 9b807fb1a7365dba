package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[backend]
url = "https://api.example.com/"
timeout = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Backend.URL)
	assert.Equal(t, 5, cfg.Backend.Timeout)
	assert.Equal(t, 8, cfg.Console.PageSize)
	assert.Equal(t, "token", cfg.Session.TokenKey)
	assert.Equal(t, "authToken", cfg.Session.LegacyKey)
	assert.Equal(t, "file", cfg.Session.Driver)
	assert.False(t, cfg.Dashboard.DemoMode)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr(), "console binds loopback unless configured otherwise")
}

func TestLoad_EnvOverridesBackendURL(t *testing.T) {
	t.Setenv("CONSOLE_BACKEND_URL", "http://localhost:9000")
	path := writeConfig(t, `
[backend]
url = "https://api.example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.Backend.URL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{name: "valid", mutate: func(c *Config) {}, ok: true},
		{name: "missing backend url", mutate: func(c *Config) { c.Backend.URL = "" }},
		{name: "relative backend url", mutate: func(c *Config) { c.Backend.URL = "/api" }},
		{name: "unknown session driver", mutate: func(c *Config) { c.Session.Driver = "cookie" }},
		{name: "zero page size", mutate: func(c *Config) { c.Console.PageSize = 0 }},
		{name: "archive without bucket", mutate: func(c *Config) { c.Archive.Enabled = true }},
		{name: "redis driver", mutate: func(c *Config) { c.Session.Driver = "redis" }, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Backend.URL = "https://api.example.com"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "admin", Password: "secret", DBName: "console", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=admin password=secret dbname=console sslmode=disable", d.DSN())
}

func TestServerConfig_Addr(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "0.0.0.0"
http_port = 9090

[backend]
url = "https://api.example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "[::1]:8080", ServerConfig{Host: "::1", HTTPPort: 8080}.Addr())
}

package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, "development", cfg.Server.Environment)
	require.False(t, cfg.Server.IsProduction())
	require.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)

	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "./data/menucard.sqlite", cfg.Database.Path)

	require.False(t, cfg.Email.SMTP.Enabled)
	require.Equal(t, 587, cfg.Email.SMTP.Port)
	require.True(t, cfg.Email.SMTP.UseTLS)
	require.Equal(t, 10*time.Second, cfg.Email.SMTP.Timeout)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9090
  log_level: debug
  environment: production
  base_url: https://menu.example.com
database:
  driver: postgres
  postgres:
    host: db.example.com
    port: 5433
    database: menucard
    username: menucard
    password: secret
email:
  smtp:
    enabled: true
    host: smtp.example.com
    port: 2525
    from: noreply@menu.example.com
    timeout: 30s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.True(t, cfg.Server.IsProduction())
	require.Equal(t, "https://menu.example.com", cfg.Server.BaseURL)

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "db.example.com", cfg.Database.Postgres.Host)
	require.Equal(t, 5433, cfg.Database.Postgres.Port)

	smtp := cfg.Email.SMTPSettings()
	require.True(t, smtp.Enabled)
	require.Equal(t, "smtp.example.com", smtp.Host)
	require.Equal(t, 2525, smtp.Port)
	require.Equal(t, "noreply@menu.example.com", smtp.From)
	require.Equal(t, 30*time.Second, smtp.Timeout)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
shutdown_timeout = 5

[database]
host = "db.internal"
port = 5432
user = "svc"
password = "secret"
dbname = "reservations"

[smtp]
host = "smtp.internal"
port = 587
from = "reservas@example.com"

[notifications]
queue_size = 128
templates_dir = "tpl"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db.internal port=5432 user=svc password=secret dbname=reservations sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "smtp.internal:587", cfg.SMTP.Addr())
	assert.Equal(t, 128, cfg.Notifications.QueueSize)
	assert.Equal(t, "tpl", cfg.Notifications.TemplatesDir)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 64, cfg.Notifications.QueueSize)
	assert.Equal(t, "templates", cfg.Notifications.TemplatesDir)
	assert.Equal(t, "reports", cfg.Reports.OutputDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

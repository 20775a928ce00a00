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

const validConfig = `
[server]
http_port = 9090
environment = "development"

[webhook]
url = "https://opulent.app.n8n.cloud/webhook/add-client"
timeout = 15

[access]
password_env = "TEST_FORM_PASSWORD"
`

func TestLoad_Valid(t *testing.T) {
	t.Setenv("TEST_FORM_PASSWORD", "s3cret")
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://opulent.app.n8n.cloud/webhook/add-client", cfg.Webhook.URL)
	assert.Equal(t, 15, cfg.Webhook.Timeout)
	assert.Equal(t, "Opulent-Form/1.0", cfg.Webhook.UserAgent)
	assert.Equal(t, "s3cret", cfg.Access.Password)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FORM_ACCESS_PASSWORD", "s3cret")
	cfg, err := Load(writeConfig(t, "[webhook]\nurl = \"https://example.test/hook\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.Webhook.Timeout)
}

func TestLoad_MissingWebhookURL(t *testing.T) {
	t.Setenv("FORM_ACCESS_PASSWORD", "s3cret")
	_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
	assert.ErrorContains(t, err, "webhook.url")
}

func TestLoad_MissingPassword(t *testing.T) {
	t.Setenv("TEST_FORM_PASSWORD", "")
	_, err := Load(writeConfig(t, validConfig))
	assert.ErrorContains(t, err, "access password is not set")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

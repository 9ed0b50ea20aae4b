package config_test

import (
	"newsletter/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
hmacSecret: "`+secret+`"
baseURL: "https://news.example.com"
http:
  addr: ":9000"
  allowedOrigins: ["https://admin.example.com"]
session:
  ttl: 1h
email:
  senderEmail: "news@example.com"
  authorizationToken: "postmark-token"
`)
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "https://news.example.com", cfg.BaseURL)
	require.Equal(t, ":9000", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, "newsletter", cfg.Database.DatabaseName)
	require.Equal(t, time.Hour, cfg.Session.TTL)
	require.Equal(t, "id", cfg.Session.CookieName)
	require.EqualValues(t, 15000, cfg.Auth.Memory)
	require.EqualValues(t, 2, cfg.Auth.Iterations)
	require.Equal(t, config.EmailProviderHTTP, cfg.Email.Provider)
	require.Equal(t, 8, cfg.Newsletter.Concurrency)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "short hmac secret",
			content: "hmacSecret: short\nemail:\n  senderEmail: a@b.com\n  authorizationToken: t\n",
		},
		{
			name:    "unknown provider",
			content: "hmacSecret: " + secret + "\nemail:\n  provider: smtp\n  senderEmail: a@b.com\n",
		},
		{
			name:    "http provider without token",
			content: "hmacSecret: " + secret + "\nemail:\n  senderEmail: a@b.com\n",
		},
		{
			name:    "missing sender",
			content: "hmacSecret: " + secret + "\nemail:\n  provider: ses\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_SESProviderNeedsNoToken(t *testing.T) {
	cfg, err := config.Load(writeConfig(t,
		"hmacSecret: "+secret+"\nemail:\n  provider: ses\n  senderEmail: a@b.com\n  ses:\n    region: eu-west-1\n"))
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Email.SES.Region)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

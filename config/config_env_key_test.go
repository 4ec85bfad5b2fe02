package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
			"timeout": "30s",
		},
		"oauth": map[string]any{
			"google": map[string]any{
				"clientId": "",
			},
		},
		"analytics": map[string]any{
			"trackingId": "",
		},
		"session": map[string]any{
			"checkInterval": "1m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "OAUTH_GOOGLE_CLIENTID", want: "oauth.google.clientId"},
		{envKey: "ANALYTICS_TRACKINGID", want: "analytics.trackingId"},
		{envKey: "SESSION_CHECKINTERVAL", want: "session.checkInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{QRCode: &QRCodeConfig{}}
	cfg.API.BaseURL = " http://localhost:8000/api/v1/ "

	cfg.applyDefaults()

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "mem://", cfg.Storage.URL)
	assert.Equal(t, time.Minute, cfg.Session.CheckInterval)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{name: "missing base url", baseURL: "", wantErr: "api.baseUrl is required"},
		{name: "not http", baseURL: "ftp://example.com", wantErr: "must be an http(s) URL"},
		{name: "valid", baseURL: "https://api.curator.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.API.BaseURL = tt.baseURL

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_RealtimeEnabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.RealtimeEnabled())

	cfg.Features.Realtime = true
	assert.False(t, cfg.RealtimeEnabled(), "flag without a URL stays disabled")

	cfg.WebSocket = &WebSocketConfig{URL: "ws://localhost:8000/ws"}
	assert.True(t, cfg.RealtimeEnabled())
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("api:\n  baseUrl: http://localhost:8000/api\n  timeout: 5s\nfeatures:\n  realtime: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testcfg.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("API_BASEURL", "https://api.curator.test")

	cfg, err := LoadWithEnv[Config]("testcfg")
	require.NoError(t, err)

	assert.Equal(t, "https://api.curator.test", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

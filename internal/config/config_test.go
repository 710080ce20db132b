package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points HOME and CHARON_CONFIG at a scratch dir so the developer's
// own config never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CHARON_CONFIG", filepath.Join(dir, "missing.toml"))
	for _, k := range []string{"SHADOW_URL", "SHADOW_PORT", "SHADOW_API_PATH"} {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(k)
		}
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9999/api/v1/charon", cfg.API.BaseURL())
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, "Release", cfg.Builder.Config)
	require.Equal(t, filepath.Join("..", "GHOST", "build"), cfg.Builder.BuildPath())
	require.Equal(t, 250*time.Millisecond, cfg.UI.TickRate)
	require.Equal(t, 5*time.Second, cfg.UI.RefreshRate)
	require.Equal(t, 30*time.Second, cfg.UI.LivenessTimeout)
	require.EqualValues(t, 10, cfg.UI.TaskRefreshTicks)
	require.Equal(t, filepath.Join(dir, ".local", "state", "charon", "charon.log"), cfg.Log.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestShadowEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SHADOW_URL", "https://c2.example.org")
	t.Setenv("SHADOW_PORT", "")
	t.Setenv("SHADOW_API_PATH", "v2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://c2.example.org/v2", cfg.API.BaseURL())
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "charon.toml")
	body := `
[api]
url = "10.0.0.5"
port = "8443"
config_subpath = "config"

[ui]
tick_rate = "100ms"
task_refresh_ticks = 4

[builder]
source_dir = "/src/ghost"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("CHARON_CONFIG", path)
	t.Setenv("CHARON_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://10.0.0.5:8443/api/v1/charon", cfg.API.BaseURL())
	require.Equal(t, "config", cfg.API.ConfigSubpath)
	require.Equal(t, 100*time.Millisecond, cfg.UI.TickRate)
	require.EqualValues(t, 4, cfg.UI.TaskRefreshTicks)
	require.Equal(t, "/src/ghost/build", cfg.Builder.BuildPath())
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		api  APIConfig
		want string
	}{
		{APIConfig{URL: "127.0.0.1", Port: "9999", Path: "/api"}, "http://127.0.0.1:9999/api"},
		{APIConfig{URL: "http://host/", Port: "", Path: ""}, "http://host"},
		{APIConfig{URL: "host", Port: "80", Path: "api/v1/"}, "http://host:80/api/v1"},
	}
	for _, tt := range tests {
		if got := tt.api.BaseURL(); got != tt.want {
			t.Fatalf("BaseURL(%+v) = %q, want %q", tt.api, got, tt.want)
		}
	}
}

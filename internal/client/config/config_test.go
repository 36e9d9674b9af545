package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"gophpass-cli"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 5 * time.Second}, c)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, defaultServerEndpointAddr, cfg.ServerEndpointAddr)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
}

func TestLoadConfig_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"server_endpoint_addr":"json:1","request_timeout":"1500ms"}`), 0o600))

	t.Run("json keeps sub-second timeout", func(t *testing.T) {
		withArgs(t, "-c", path)
		cfg := LoadConfig()
		assert.Equal(t, "json:1", cfg.ServerEndpointAddr)
		assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	})

	t.Run("env over json", func(t *testing.T) {
		withArgs(t, "-c", path)
		t.Setenv("GOPHPASS_TIMEOUT", "250ms")
		cfg := LoadConfig()
		assert.Equal(t, "json:1", cfg.ServerEndpointAddr)
		assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	})

	t.Run("flags over env", func(t *testing.T) {
		withArgs(t, "-c", path, "-a", "flag:2", "-t", "3s")
		t.Setenv("GOPHPASS_SERVER", "env:3")
		t.Setenv("GOPHPASS_TIMEOUT", "250ms")
		cfg := LoadConfig()
		assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	})
}

func TestParseEnv_Malformed(t *testing.T) {
	t.Setenv("GOPHPASS_TIMEOUT", "soon")
	assert.Panics(t, func() { parseEnv(&Config{}) })
}

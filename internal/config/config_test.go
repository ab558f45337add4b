package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, config.APIURL)
	assert.Equal(t, 10, config.TimeoutSeconds)
	assert.Equal(t, 10*time.Second, config.Timeout())
	assert.False(t, config.LogoutRevoke)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api_url: https://wms.example.com/api
timeout_seconds: 30
logout_revoke: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://wms.example.com/api", config.APIURL)
	assert.Equal(t, 30, config.TimeoutSeconds)
	assert.True(t, config.LogoutRevoke)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.com/api\n"), 0600))

	t.Setenv("WMSCTL_API_URL", "https://env.example.com/api")
	t.Setenv("WMSCTL_TIMEOUT_SECONDS", "5")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/api", config.APIURL)
	assert.Equal(t, 5, config.TimeoutSeconds)
}

func TestLoadExpandsEnvInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: ${WMS_BACKEND}\n"), 0600))

	t.Setenv("WMS_BACKEND", "https://expanded.example.com/api")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://expanded.example.com/api", config.APIURL)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [not: closed\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty api url", func(c *Config) { c.APIURL = "" }, true},
		{"non-http api url", func(c *Config) { c.APIURL = "ftp://x" }, true},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"empty state dir", func(c *Config) { c.StateDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)
			err := Validate(config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	original := Default()
	original.APIURL = "https://wms.example.com/api"
	original.LogoutRevoke = true
	require.NoError(t, Save(original, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.APIURL, loaded.APIURL)
	assert.True(t, loaded.LogoutRevoke)
}

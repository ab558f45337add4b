// Package config loads wmsctl configuration from a YAML file with
// environment overrides. Precedence: defaults, then the config file, then
// WMSCTL_* environment variables. A .env file in the working directory is
// folded into the environment before overrides apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when no backend address is configured
const DefaultAPIURL = "http://localhost:8000/api"

// LogConfig controls log output
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Config is the complete wmsctl configuration
type Config struct {
	APIURL            string    `yaml:"api_url"`
	TimeoutSeconds    int       `yaml:"timeout_seconds,omitempty"`
	StateDir          string    `yaml:"state_dir,omitempty"`
	LogoutRevoke      bool      `yaml:"logout_revoke,omitempty"`
	SessionPassphrase string    `yaml:"-"`
	Log               LogConfig `yaml:"log,omitempty"`
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wmsctl", "config.yaml")
}

// DefaultStateDir returns the default session state location
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wmsctl"
	}
	return filepath.Join(home, ".wmsctl")
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		TimeoutSeconds: 10,
		StateDir:       DefaultStateDir(),
		Log:            LogConfig{Level: "warn"},
	}
}

// Load builds the effective configuration. A missing config file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	// Local .env files are a development convenience; absence is normal.
	_ = godotenv.Load()

	config := Default()

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
			return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	applyEnvOverrides(config)

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate checks a configuration for usability
func Validate(config *Config) error {
	if config.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	if !strings.HasPrefix(config.APIURL, "http://") && !strings.HasPrefix(config.APIURL, "https://") {
		return fmt.Errorf("api_url must be an http or https URL: %s", config.APIURL)
	}
	if config.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	if config.StateDir == "" {
		return fmt.Errorf("state_dir is required")
	}
	return nil
}

// Save writes the configuration to a YAML file
func Save(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("WMSCTL_API_URL"); v != "" {
		config.APIURL = v
	}
	if v := os.Getenv("WMSCTL_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("WMSCTL_STATE_DIR"); v != "" {
		config.StateDir = v
	}
	if v := os.Getenv("WMSCTL_LOGOUT_REVOKE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.LogoutRevoke = b
		}
	}
	if v := os.Getenv("WMSCTL_SESSION_PASSPHRASE"); v != "" {
		config.SessionPassphrase = v
	}
	if v := os.Getenv("WMSCTL_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("WMSCTL_LOG_FILE"); v != "" {
		config.Log.File = v
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel     = "gemini-2.0-flash"
	DefaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout   = "30s"
	DefaultAPIKeyEnv = "GEMINI_API_KEY"
)

// Auth modes for transmitting the credential.
const (
	AuthQuery  = "query"
	AuthHeader = "header"
)

type Config struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
	Auth      string `yaml:"auth,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:     DefaultModel,
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Auth:      AuthQuery,
		APIKeyEnv: DefaultAPIKeyEnv,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nebulaextract"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nebulaextract"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the user config file. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path on top of the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	if c.APIKeyEnv == "" {
		return errors.New("api_key_env must not be empty")
	}
	switch c.Auth {
	case AuthQuery, AuthHeader:
	default:
		return fmt.Errorf("unknown auth mode %q (want %q or %q)", c.Auth, AuthQuery, AuthHeader)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses the configured request timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", d)
	}
	return d, nil
}

// APIKey reads the credential from the configured environment variable.
func (c *Config) APIKey() (string, error) {
	key := os.Getenv(c.APIKeyEnv)
	if key == "" {
		return "", &ConfigurationError{Var: c.APIKeyEnv}
	}
	return key, nil
}

// LoadDotEnv loads .env from the working directory if present.
// Variables already set in the environment win.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

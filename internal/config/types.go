package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAppEnv         = "dev"
	defaultAppLogLevel    = "info"
	defaultTimeoutSecs    = 15
	defaultRetryLimit     = 3
	defaultRetryDelaySecs = 1
)

// Config is the top-level configuration carrier.
type Config struct {
	App    AppConfig    `toml:"app"`
	Alpaca AlpacaConfig `toml:"alpaca"`
}

// AppConfig covers process-wide concerns: environment name and logging.
type AppConfig struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	LogPath  string `toml:"log_path"`
}

// AlpacaConfig describes how to reach the Alpaca brokerage. Credentials may
// be left empty and supplied through Alpaca's standard environment
// variables (APCA_API_KEY_ID, APCA_API_SECRET_KEY, APCA_API_BASE_URL).
type AlpacaConfig struct {
	APIKey            string `toml:"api_key"`
	APISecret         string `toml:"api_secret"`
	BaseURL           string `toml:"base_url"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RetryLimit        int    `toml:"retry_limit"`
	RetryDelaySeconds int    `toml:"retry_delay_seconds"`
}

// Timeout returns the HTTP timeout as a duration.
func (a AlpacaConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// RetryDelay returns the pause between retried requests as a duration.
func (a AlpacaConfig) RetryDelay() time.Duration {
	return time.Duration(a.RetryDelaySeconds) * time.Second
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.App.Env) == "" {
		c.App.Env = defaultAppEnv
	}
	if strings.TrimSpace(c.App.LogLevel) == "" {
		c.App.LogLevel = defaultAppLogLevel
	}
	if c.Alpaca.TimeoutSeconds <= 0 {
		c.Alpaca.TimeoutSeconds = defaultTimeoutSecs
	}
	if c.Alpaca.RetryLimit <= 0 {
		c.Alpaca.RetryLimit = defaultRetryLimit
	}
	if c.Alpaca.RetryDelaySeconds <= 0 {
		c.Alpaca.RetryDelaySeconds = defaultRetryDelaySecs
	}
}

func validate(c *Config) error {
	if raw := strings.TrimSpace(c.Alpaca.BaseURL); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing alpaca.base_url failed: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("alpaca.base_url must be http(s), got %q", raw)
		}
	}
	return nil
}

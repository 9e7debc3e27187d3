package alpaca

import (
	"os"
	"strings"
	"time"
)

// PaperBaseURL is Alpaca's paper-trading endpoint, the default venue when no
// base URL is configured.
const PaperBaseURL = "https://paper-api.alpaca.markets"

// Config carries the credentials and transport knobs for one Alpaca account.
// Empty credential fields fall back to Alpaca's usual environment variables
// (APCA_API_KEY_ID, APCA_API_SECRET_KEY, APCA_API_BASE_URL).
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string

	HTTPTimeout time.Duration
	RetryLimit  int
	RetryDelay  time.Duration
}

func (c *Config) withDefaults() Config {
	out := *c
	out.APIKey = strings.TrimSpace(out.APIKey)
	if out.APIKey == "" {
		out.APIKey = os.Getenv("APCA_API_KEY_ID")
	}
	out.APISecret = strings.TrimSpace(out.APISecret)
	if out.APISecret == "" {
		out.APISecret = os.Getenv("APCA_API_SECRET_KEY")
	}
	out.BaseURL = strings.TrimSpace(out.BaseURL)
	if out.BaseURL == "" {
		out.BaseURL = strings.TrimSpace(os.Getenv("APCA_API_BASE_URL"))
	}
	if out.BaseURL == "" {
		out.BaseURL = PaperBaseURL
	}
	if out.HTTPTimeout <= 0 {
		out.HTTPTimeout = 15 * time.Second
	}
	if out.RetryLimit <= 0 {
		out.RetryLimit = 3
	}
	if out.RetryDelay <= 0 {
		out.RetryDelay = time.Second
	}
	return out
}

// IsPaper reports whether the effective base URL points at Alpaca's paper
// trading environment. Anything that places real orders should be gated on
// it.
func (c Config) IsPaper() bool {
	return strings.Contains(c.withDefaults().BaseURL, "paper-api")
}

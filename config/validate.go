package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded values. The API key is not required here since
// a run may supply it later; callers that need it use RequireAPIKey.
func (c *Config) Validate() error {
	if err := c.CompaniesHouse.validate(); err != nil {
		return fmt.Errorf("companies_house: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

// RequireAPIKey fails when no API key is configured.
func (c CompaniesHouseConfig) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api_key is required (set CH_API_KEY)")
	}
	return nil
}

func (c CompaniesHouseConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", c.Timeout)
	}
	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}
}

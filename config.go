package ddog

import (
	"fmt"
	"os"
	"time"
)

const defaultSite = "datadoghq.com"

// Environment variables consulted by ConfigFromEnv.
const (
	envSite           = "DD_SITE"
	envAPIKey         = "DD_API_KEY"
	envApplicationKey = "DD_APPLICATION_KEY"
)

type Config struct {
	// Site is the API site, e.g. "datadoghq.com" or "datadoghq.eu".
	// Defaults to datadoghq.com.
	Site string
	// BaseURL overrides the site-derived base URL when set.
	BaseURL string
	// APIKey authenticates submissions. Required.
	APIKey string
	// ApplicationKey additionally authorizes management endpoints such as
	// tag configuration and metric listing. Optional.
	ApplicationKey string
	// Timeout bounds a single request attempt.
	Timeout time.Duration
	// MaxRetryTimeout bounds the whole retry window of one execution.
	MaxRetryTimeout time.Duration
}

// ConfigFromEnv builds a Config from the conventional environment variables
// DD_SITE, DD_API_KEY and DD_APPLICATION_KEY.
func ConfigFromEnv() Config {
	return Config{
		Site:           os.Getenv(envSite),
		APIKey:         os.Getenv(envAPIKey),
		ApplicationKey: os.Getenv(envApplicationKey),
	}
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api key is required")
	}

	return nil
}

func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}

	site := c.Site
	if site == "" {
		site = defaultSite
	}

	return fmt.Sprintf("https://api.%s", site)
}

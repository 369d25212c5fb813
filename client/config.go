package client

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
)

// Config holds the transport settings for a Client. Zero values are filled
// with defaults by NewClient; Endpoint and Region are required.
type Config struct {
	Endpoint          string        `json:"endpoint" env:"OPENSEARCH_ENDPOINT"`
	Region            string        `json:"region" env:"OPENSEARCH_REGION"`
	InsecureSkipTLS   bool          `json:"insecure_skip_tls" env:"OPENSEARCH_INSECURE_SKIP_TLS,default=false"`
	RateLimit         float64       `json:"rate_limit" env:"OPENSEARCH_RATE_LIMIT,default=10.0"`
	RateBurst         int           `json:"rate_burst" env:"OPENSEARCH_RATE_BURST,default=20"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"OPENSEARCH_CONNECTION_TIMEOUT,default=30s"`
	RequestTimeout    time.Duration `json:"request_timeout" env:"OPENSEARCH_REQUEST_TIMEOUT,default=60s"`
	MaxRetries        int           `json:"max_retries" env:"OPENSEARCH_MAX_RETRIES,default=3"`
	RetryDelay        time.Duration `json:"retry_delay" env:"OPENSEARCH_RETRY_DELAY,default=1s"`
	MaxConnections    int           `json:"max_connections" env:"OPENSEARCH_MAX_CONNECTIONS,default=100"`
	MaxIdleConns      int           `json:"max_idle_conns" env:"OPENSEARCH_MAX_IDLE_CONNS,default=10"`
	IdleConnTimeout   time.Duration `json:"idle_conn_timeout" env:"OPENSEARCH_IDLE_CONN_TIMEOUT,default=90s"`
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values and adjusts them to safe
// ranges.
func validateConfig(config *Config) error {
	if config.Endpoint == "" {
		return fmt.Errorf("OPENSEARCH_ENDPOINT is required")
	}

	parsedURL, err := url.Parse(config.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid OPENSEARCH_ENDPOINT URL format: %w", err)
	}
	if parsedURL.Scheme == "" {
		return fmt.Errorf("OPENSEARCH_ENDPOINT must include scheme (http:// or https://)")
	}
	if !strings.HasPrefix(parsedURL.Scheme, "http") {
		return fmt.Errorf("OPENSEARCH_ENDPOINT scheme must be http or https")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("OPENSEARCH_ENDPOINT must include a valid host")
	}

	if config.Region == "" {
		return fmt.Errorf("OPENSEARCH_REGION is required")
	}

	if config.RateLimit <= 0 {
		config.RateLimit = 10.0
	}
	if config.RateLimit > 1000 {
		config.RateLimit = 1000
	}
	if config.RateBurst <= 0 {
		config.RateBurst = 20
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.MaxRetries > 10 {
		config.MaxRetries = 10
	}

	return nil
}

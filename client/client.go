// Package client is a signed transport for Amazon OpenSearch Service with
// typed namespaces for documents, indices, cluster, search, and bulk.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"math"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	opensearch "github.com/opensearch-project/opensearch-go/v4"
	requestsigner "github.com/opensearch-project/opensearch-go/v4/signer/awsv2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

const meterName = "github.com/ca-srg/osdsl/client"

// Client performs signed, rate-limited requests against an OpenSearch
// domain.
type Client struct {
	transport   *opensearch.Client
	rateLimiter *rate.Limiter
	config      *Config

	requestCount   metric.Int64Counter
	requestLatency metric.Float64Histogram
}

// NewClient builds a client from the configuration. AWS credentials are
// resolved from the default chain and used to SigV4-sign every request.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}

	if cfg.Region == "" {
		return nil, fmt.Errorf("region is required")
	}

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10.0
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 20
	}
	if cfg.ConnectionTimeout == 0 {
		cfg.ConnectionTimeout = 30 * time.Second
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 1 * time.Second
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = 100
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 10
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = 90 * time.Second
	}

	awsConfig, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	signer, err := requestsigner.NewSignerWithService(awsConfig, "es")
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS signer: %w", err)
	}

	osClient, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{cfg.Endpoint},
		Signer:    signer,
		Transport: newTransport(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenSearch client: %w", err)
	}

	meter := otel.Meter(meterName)
	requestCount, err := meter.Int64Counter("opensearch.client.requests",
		metric.WithDescription("Number of requests sent to the cluster"))
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}
	requestLatency, err := meter.Float64Histogram("opensearch.client.request.duration",
		metric.WithDescription("Request round-trip latency"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create latency histogram: %w", err)
	}

	return &Client{
		transport:      osClient,
		rateLimiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		config:         cfg,
		requestCount:   requestCount,
		requestLatency: requestLatency,
	}, nil
}

// newTransport builds the HTTP transport from the config. ConnectionTimeout
// bounds connection establishment; RequestTimeout bounds the wait for
// response headers.
func newTransport(cfg *Config) *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectionTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipTLS,
		},
		MaxConnsPerHost:       cfg.MaxConnections,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConns / 2,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.RequestTimeout,
	}
}

// WaitForRateLimit blocks until the limiter admits one request or the
// context is done.
func (c *Client) WaitForRateLimit(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}

// do performs one signed request and returns the response body. Non-2xx
// statuses and transport failures come back as *RequestError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType, operation string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", operation, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.transport.Perform(req)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Int("status", status),
	)
	c.requestCount.Add(ctx, 1, attrs)
	c.requestLatency.Record(ctx, float64(elapsed.Milliseconds()), attrs)

	if err != nil {
		log.Printf("%s request failed: %v", operation, err)
		return nil, ClassifyConnectionError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ClassifyConnectionError(err)
	}
	if resp.StatusCode >= 300 {
		return nil, ClassifyHTTPError(resp.StatusCode, string(data))
	}
	return data, nil
}

// RetryableOperation defines a function that can be retried.
type RetryableOperation func() error

// ExecuteWithRetry executes an operation with exponential backoff. A
// *RequestError marked non-retryable aborts immediately.
func (c *Client) ExecuteWithRetry(ctx context.Context, operation RetryableOperation, operationName string) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * c.config.RetryDelay
			log.Printf("Retrying %s operation after %v (attempt %d/%d)",
				operationName, delay, attempt, c.config.MaxRetries)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := operation(); err != nil {
			lastErr = err

			if reqErr, ok := err.(*RequestError); ok {
				if !reqErr.IsRetryable() {
					log.Printf("%s operation failed with non-retryable error: %v", operationName, err)
					return err
				}
				log.Printf("%s operation failed (attempt %d/%d): %v",
					operationName, attempt+1, c.config.MaxRetries+1, err)
			} else {
				log.Printf("%s operation failed with unknown error (attempt %d/%d): %v",
					operationName, attempt+1, c.config.MaxRetries+1, err)
			}
			continue
		}

		if attempt > 0 {
			log.Printf("%s operation succeeded after %d retries", operationName, attempt)
		}
		return nil
	}

	return fmt.Errorf("%s operation failed after %d attempts, last error: %w",
		operationName, c.config.MaxRetries+1, lastErr)
}

package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorType classifies a request failure.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeServer     ErrorType = "server"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// RequestError is a classified transport failure. Retryable errors carry a
// suggested backoff in RetryAfter.
type RequestError struct {
	Type       ErrorType     `json:"type"`
	Message    string        `json:"message"`
	StatusCode int           `json:"status_code,omitempty"`
	Retryable  bool          `json:"retryable"`
	RetryAfter time.Duration `json:"retry_after,omitempty"`
	Body       string        `json:"body,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s (HTTP %d)", e.Type, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *RequestError) IsRetryable() bool {
	return e.Retryable
}

// ClassifyHTTPError maps a non-2xx response to a RequestError.
func ClassifyHTTPError(statusCode int, body string) *RequestError {
	switch statusCode {
	case http.StatusBadRequest:
		return &RequestError{
			Type:       ErrorTypeValidation,
			Message:    "the request body was rejected",
			StatusCode: statusCode,
			Retryable:  false,
			Body:       body,
			Suggestion: "check the query or aggregation structure against the index mapping",
			Timestamp:  time.Now(),
		}
	case http.StatusUnauthorized:
		return &RequestError{
			Type:       ErrorTypeValidation,
			Message:    "authentication failed",
			StatusCode: statusCode,
			Retryable:  false,
			Suggestion: "verify the AWS credentials are configured correctly",
			Timestamp:  time.Now(),
		}
	case http.StatusForbidden:
		return &RequestError{
			Type:       ErrorTypeValidation,
			Message:    "access denied",
			StatusCode: statusCode,
			Retryable:  false,
			Suggestion: "verify the IAM role grants access to the domain",
			Timestamp:  time.Now(),
		}
	case http.StatusNotFound:
		return &RequestError{
			Type:       ErrorTypeValidation,
			Message:    "the index or endpoint was not found",
			StatusCode: statusCode,
			Retryable:  false,
			Body:       body,
			Suggestion: "verify the endpoint URL and index name",
			Timestamp:  time.Now(),
		}
	case http.StatusRequestTimeout:
		return &RequestError{
			Type:       ErrorTypeTimeout,
			Message:    "the request timed out",
			StatusCode: statusCode,
			Retryable:  true,
			RetryAfter: 5 * time.Second,
			Timestamp:  time.Now(),
		}
	case http.StatusTooManyRequests:
		retryAfter := 10 * time.Second
		if strings.Contains(body, "retry after") {
			retryAfter = 30 * time.Second
		}
		return &RequestError{
			Type:       ErrorTypeRateLimit,
			Message:    "rate limited by the cluster",
			StatusCode: statusCode,
			Retryable:  true,
			RetryAfter: retryAfter,
			Suggestion: "lower the request rate or raise the client limiter",
			Timestamp:  time.Now(),
		}
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return &RequestError{
			Type:       ErrorTypeServer,
			Message:    "the cluster returned a server error",
			StatusCode: statusCode,
			Retryable:  true,
			RetryAfter: 10 * time.Second,
			Body:       body,
			Suggestion: "check the cluster health",
			Timestamp:  time.Now(),
		}
	default:
		return &RequestError{
			Type:       ErrorTypeUnknown,
			Message:    fmt.Sprintf("unexpected HTTP status: %s", body),
			StatusCode: statusCode,
			Retryable:  statusCode >= 500,
			RetryAfter: 5 * time.Second,
			Timestamp:  time.Now(),
		}
	}
}

// ClassifyConnectionError maps a transport-level failure to a RequestError.
func ClassifyConnectionError(err error) *RequestError {
	errMsg := err.Error()

	if strings.Contains(errMsg, "timeout") {
		return &RequestError{
			Type:       ErrorTypeTimeout,
			Message:    "the connection timed out",
			Retryable:  true,
			RetryAfter: 5 * time.Second,
			Suggestion: "check network connectivity and the endpoint",
			Timestamp:  time.Now(),
		}
	}

	if strings.Contains(errMsg, "connection refused") {
		return &RequestError{
			Type:       ErrorTypeValidation,
			Message:    "the connection was refused",
			Retryable:  false,
			Suggestion: "verify the endpoint URL and port",
			Timestamp:  time.Now(),
		}
	}

	if strings.Contains(errMsg, "no such host") {
		return &RequestError{
			Type:       ErrorTypeValidation,
			Message:    "the endpoint host was not found",
			Retryable:  false,
			Suggestion: "verify the endpoint hostname",
			Timestamp:  time.Now(),
		}
	}

	return &RequestError{
		Type:       ErrorTypeUnknown,
		Message:    fmt.Sprintf("connection error: %v", err),
		Retryable:  true,
		RetryAfter: 10 * time.Second,
		Timestamp:  time.Now(),
	}
}

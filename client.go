package ddog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/castai/logging"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultMaxRetry = 15 * time.Second
)

// Client executes routes produced by a Builder against the monitoring API.
type Client struct {
	baseURL         string
	apiKey          string
	applicationKey  string
	httpClient      *http.Client
	maxRetryTimeout time.Duration
	logger          *logging.Logger
}

// NewClient creates a new Client which is responsible for executing routes
// against the monitoring API. It validates the provided configuration and
// sets up the underlying HTTP client.
//
// Parameters:
//   - cfg: Configuration struct containing the API site or base URL, keys,
//     and optional timeouts.
//   - logger: Logger instance for diagnostic and error messages.
//
// Returns:
//   - *Client: an initialized client ready to execute routes.
//   - error: if required configuration is missing.
func NewClient(cfg Config, logger *logging.Logger) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:         cfg.baseURL(),
		apiKey:          cfg.APIKey,
		applicationKey:  cfg.ApplicationKey,
		httpClient:      &http.Client{Timeout: defaultTimeout},
		maxRetryTimeout: defaultMaxRetry,
		logger:          logger,
	}

	if cfg.Timeout > 0 {
		c.httpClient.Timeout = cfg.Timeout
	}

	if cfg.MaxRetryTimeout > 0 {
		c.maxRetryTimeout = cfg.MaxRetryTimeout
	}

	return c, nil
}

// Do materializes the route and executes it, returning the response status
// code and body. The configured credential headers are injected first, then
// the caller-supplied headers verbatim; duplicate names are retained. Every
// execution carries a generated X-Request-ID.
//
// Transient failures (transport errors and 5xx responses) are retried with
// exponential backoff until MaxRetryTimeout elapses. Responses below 500 are
// returned as-is; callers branch on the status code.
func (c *Client) Do(ctx context.Context, route Route, headers ...Header) (int, []byte, error) {
	method, path, body, err := route.Endpoint()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to materialize route: %w", err)
	}

	requestID := uuid.NewString()

	var status int
	var respBody []byte

	operation := func() error {
		var reqBody io.Reader
		if body != nil {
			reqBody = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		if body != nil {
			req.Header.Set(HeaderContentType, "application/json")
		}
		req.Header.Set(HeaderAPIKey, c.apiKey)
		if c.applicationKey != "" {
			req.Header.Set(HeaderApplicationKey, c.applicationKey)
		}
		req.Header.Set(HeaderRequestID, requestID)

		for _, h := range headers {
			req.Header.Add(h.Name, h.Value)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warnf("request %s failed: %v", requestID, err)
			return err
		}
		defer resp.Body.Close()

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		status = resp.StatusCode

		if status >= http.StatusInternalServerError {
			c.logger.Warnf("request %s got status %d, retrying", requestID, status)
			return fmt.Errorf("server returned status %d", status)
		}

		return nil
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxRetryTimeout)
	defer cancel()

	b := backoff.WithContext(backoff.NewExponentialBackOff(), timeoutCtx)

	if err := backoff.Retry(operation, b); err != nil {
		return status, respBody, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}

	if status >= http.StatusBadRequest {
		if msgs := gjson.GetBytes(respBody, "errors"); msgs.Exists() {
			c.logger.Errorf("api rejected %s %s with status %d: %s", method, path, status, msgs.Raw)
		}
	}

	return status, respBody, nil
}

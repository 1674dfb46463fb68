package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// UserAgent presents as a desktop browser; several of the upstream
	// pages serve a stripped-down document to unknown clients.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	Timeout    = 20 * time.Second
	MaxRetries = 2 // attempts = MaxRetries + 1
	RetryDelay = 2 * time.Second
)

// ContentHint tells the client what kind of content the caller
// expects. It only shapes request headers; rendering JavaScript-heavy
// pages is out of this client's hands.
type ContentHint int

const (
	HintStructured ContentHint = iota // JSON endpoint
	HintRendered                      // HTML page
)

// Client fetches raw upstream content with a bounded retry policy.
type Client struct {
	httpClient *http.Client
	maxRetries uint64
	retryDelay time.Duration
}

// New creates a Client with the default timeout and retry policy.
func New() *Client {
	return NewWithPolicy(Timeout, MaxRetries, RetryDelay)
}

// NewWithPolicy creates a Client with an explicit timeout and retry
// policy.
func NewWithPolicy(timeout time.Duration, maxRetries uint64, retryDelay time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// Fetch returns the body at url as text. Transient failures (network
// errors, non-2xx statuses) are retried a fixed number of times with a
// fixed delay; after that the error is returned and the caller treats
// the source as having produced nothing.
func (c *Client) Fetch(ctx context.Context, url string, hint ContentHint) (string, error) {
	var body string

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)
		if hint == HintStructured {
			req.Header.Set("Accept", "application/json")
		} else {
			req.Header.Set("Accept", "text/html,application/xhtml+xml")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("fetching %s: unexpected status code %d", url, resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = string(data)
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), c.maxRetries),
		ctx,
	)
	if err := backoff.Retry(attempt, policy); err != nil {
		return "", err
	}
	return body, nil
}

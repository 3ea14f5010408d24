package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pfrederiksen/scratchrank/internal/logger"
)

const (
	// UserAgent mirrors the header set the lottery site serves full
	// markup to; the default Go user agent gets a stripped page.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	Accept    = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

	DefaultTimeout   = 30 * time.Second
	DefaultRetryWait = 1 * time.Second

	maxAttempts = 3
)

// Client fetches pages with bounded retries
type Client struct {
	httpClient *http.Client
	retryWait  time.Duration
}

// New creates a Client with the given per-request timeout and the wait
// applied between retry attempts.
func New(timeout, retryWait time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retryWait <= 0 {
		retryWait = DefaultRetryWait
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryWait: retryWait,
	}
}

// Get fetches url and returns the page body as text. Transport errors
// and non-2xx statuses are retried up to three attempts with a constant
// wait between them; the last error is returned once attempts are
// exhausted.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	var body string
	attempt := 0

	op := func() error {
		attempt++
		text, err := c.getOnce(ctx, url)
		if err != nil {
			logger.Warn("fetch attempt failed", logger.Fields{
				"url":     url,
				"attempt": attempt,
				"max":     maxAttempts,
				"error":   err.Error(),
			})
			return err
		}
		body = text
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryWait), maxAttempts-1),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return body, nil
}

// getOnce performs a single GET with the fixed header set
func (c *Client) getOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", Accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) // nolint:errcheck
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}

// Package http provides an HTTP-based implementation of pagelens.Fetcher
// for fetching pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagelens"
)

// Defaults for fetch behavior. Retries cover the transient failures a page
// load hits in practice (slow origins, 5xx hiccups); anything that still
// fails after the last attempt is reported as-is.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultRetries      = 3
	DefaultBackoff      = 500 * time.Millisecond
)

// userAgent identifies the tool to origin servers.
const userAgent = "pagelens/1.0 (+https://github.com/fwojciec/pagelens)"

// Ensure Fetcher implements pagelens.Fetcher at compile time.
var _ pagelens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	retries int
	backoff time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetries sets the number of attempts per fetch. Values below 1 are
// treated as 1.
func WithRetries(n int) Option {
	return func(f *Fetcher) {
		if n < 1 {
			n = 1
		}
		f.retries = n
	}
}

// WithBackoff sets the initial delay between attempts. The delay doubles
// after each failed attempt.
func WithBackoff(d time.Duration) Option {
	return func(f *Fetcher) {
		f.backoff = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		retries: DefaultRetries,
		backoff: DefaultBackoff,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, retrying transient
// failures with exponential backoff.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	delay := f.backoff

	for attempt := 0; attempt < f.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		html, err := f.fetchOnce(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Context cancellation is not transient.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		// Bad URLs and definitive HTTP statuses won't improve on retry.
		switch pagelens.ErrorCode(err) {
		case pagelens.EINVALID, pagelens.ENOTFOUND:
			return "", err
		}
	}

	return "", lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", pagelens.Errorf(pagelens.ENOTFOUND, "HTTP 404 for %s", url)
	default:
		return "", pagelens.Errorf(pagelens.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close implements pagelens.Fetcher. Plain HTTP fetchers hold no resources.
func (f *Fetcher) Close() error {
	return nil
}

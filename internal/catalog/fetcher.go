package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchError describes a failed page retrieval. StatusCode is zero when
// the request never produced a response.
type FetchError struct {
	// URL is the page that failed to load.
	URL string
	// StatusCode is the HTTP status received, if any.
	StatusCode int
	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying transport error.
func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves catalog pages over HTTP.
//
// Design decision: We require an external *http.Client rather than
// building one internally because:
//  1. Timeout and proxy settings belong to the caller's configuration
//  2. Allows for different configurations in tests
//  3. A shared client reuses connections across listing and detail fetches
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	headers     map[string]string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) FetcherOption {
	return func(f *Fetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
	}
}

// WithMaxBodySize caps how many bytes of a response body are read.
// Protects against unexpectedly large pages.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithHeaders sets additional headers sent with every request.
func WithHeaders(headers map[string]string) FetcherOption {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// NewFetcher creates a Fetcher that issues requests through client.
func NewFetcher(client *http.Client, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      client,
		userAgent:   "ollamascan/1.0 (+https://github.com/nao1215/ollamascan)",
		maxBodySize: 5 * 1024 * 1024,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves a page and requires a successful response. Both a
// transport failure and a non-2xx status return a *FetchError; the
// caller decides whether that is fatal or skippable.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", 0, &FetchError{URL: pageURL, Err: err}
	}
	f.setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // Close error on a read-only body is not actionable

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", resp.StatusCode, &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", resp.StatusCode, &FetchError{URL: pageURL, StatusCode: resp.StatusCode, Err: err}
	}

	return string(body), resp.StatusCode, nil
}

// Status probes a page and returns only its HTTP status. Unlike Fetch,
// a non-2xx status is a valid answer here, not an error; only transport
// failures are reported.
func (f *Fetcher) Status(ctx context.Context, pageURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return 0, &FetchError{URL: pageURL, Err: err}
	}
	f.setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // Close error on a read-only body is not actionable

	// The body is irrelevant for an existence probe; drain a little so
	// the connection can be reused, then discard.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	return resp.StatusCode, nil
}

// setHeaders applies the fetcher's standard headers to a request.
func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}
}

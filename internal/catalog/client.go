package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nao1215/ollamascan/internal/model"
	"golang.org/x/sync/errgroup"
)

// Client orchestrates listing retrieval, local filtering, and concurrent
// detail extraction against a single catalog host.
type Client struct {
	fetcher     *Fetcher
	extractor   DetailExtractor
	host        string
	concurrency int
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHost overrides the catalog base URL. A trailing slash is removed.
func WithHost(host string) ClientOption {
	return func(c *Client) {
		if host != "" {
			c.host = strings.TrimSuffix(host, "/")
		}
	}
}

// WithExtractor replaces the detail extractor.
func WithExtractor(extractor DetailExtractor) ClientOption {
	return func(c *Client) {
		if extractor != nil {
			c.extractor = extractor
		}
	}
}

// WithConcurrency sets how many detail pages are fetched in parallel.
// This bounds simultaneous requests only; it never limits how many
// models a search processes.
func WithConcurrency(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a catalog client around the given fetcher.
func NewClient(fetcher *Fetcher, opts ...ClientOption) *Client {
	c := &Client{
		fetcher:     fetcher,
		host:        "https://ollama.com",
		concurrency: 10,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.extractor == nil {
		c.extractor = NewRegexExtractor(WithExtractorLogger(c.logger))
	}
	return c
}

// LibraryURL returns the full catalog listing URL.
func (c *Client) LibraryURL() string {
	return c.host + LibraryPath
}

// modelURL returns the detail page URL for a model.
func (c *Client) modelURL(name string) string {
	return c.host + LibraryPath + "/" + name
}

// ModelInfo bundles a model's page metadata with its extracted records.
type ModelInfo struct {
	// Name is the model identifier the lookup was made with.
	Name string
	// Meta holds the detail page's title and description.
	Meta PageMeta
	// Tags are the extracted tag records for the model.
	Tags []model.TagRecord
}

// Models fetches the listing page and returns every identifier on it,
// sorted ascending. A listing failure is fatal: without the listing
// there is nothing to filter or probe.
func (c *Client) Models(ctx context.Context) ([]string, error) {
	content, _, err := c.fetcher.Fetch(ctx, c.LibraryURL())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog listing: %w", err)
	}
	return ExtractIdentifiers(content), nil
}

// Search returns tag records for every listed model whose name contains
// the query, up to limit models. The limit caps how many matched models
// have their detail pages fetched, not how many run at once; a limit of
// zero or less means no cap.
//
// All detail fetches complete before any merging happens, so the caller
// never observes a partial result. A model whose detail page cannot be
// fetched is skipped rather than failing the whole search.
func (c *Client) Search(ctx context.Context, query string, limit int) (model.ResultSet, error) {
	identifiers, err := c.Models(ctx)
	if err != nil {
		return nil, err
	}

	matched := FilterIdentifiers(identifiers, query)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	c.logger.Debug("search matched models",
		"query", query,
		"matched", len(matched),
		"limit", limit)

	// One slot per model keeps completed extractions independent until
	// the barrier; a skipped fetch simply leaves its slot nil.
	results := make([]model.ResultSet, len(matched))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, name := range matched {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			content, _, err := c.fetcher.Fetch(ctx, c.modelURL(name))
			if err != nil {
				// One unavailable page must not abort the search.
				c.logger.Debug("skipping model, detail page fetch failed",
					"model", name,
					"error", err)
				return nil
			}

			records := c.extractor.ExtractDetails(name, content)

			mu.Lock()
			results[i] = records
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search interrupted: %w", err)
	}

	merged := make(model.ResultSet, 0)
	for _, records := range results {
		merged = append(merged, records...)
	}
	merged.Sort()
	return merged.Dedupe(), nil
}

// Tags returns the sorted tag names for one model. A model whose detail
// page cannot be fetched reports ErrModelNotFound.
func (c *Client) Tags(ctx context.Context, name string) ([]string, error) {
	records, err := c.fetchRecords(ctx, name)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(records))
	for _, record := range records {
		tags = append(tags, record.Tag)
	}
	return tags, nil
}

// Exists probes the model's detail page and reports whether the model is
// published in the catalog. Any received status outside 2xx means "no";
// a transport failure is returned for the caller to decide.
func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	status, err := c.fetcher.Status(ctx, c.modelURL(name))
	if err != nil {
		return false, err
	}
	return status >= 200 && status <= 299, nil
}

// Info fetches a model's detail page and returns its metadata together
// with the extracted tag records.
func (c *Client) Info(ctx context.Context, name string) (*ModelInfo, error) {
	content, records, err := c.fetchPage(ctx, name)
	if err != nil {
		return nil, err
	}

	meta, err := ExtractPageMeta(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse detail page for %s: %w", name, err)
	}

	return &ModelInfo{
		Name: name,
		Meta: *meta,
		Tags: records,
	}, nil
}

// fetchRecords retrieves and extracts one model's tag records.
func (c *Client) fetchRecords(ctx context.Context, name string) ([]model.TagRecord, error) {
	_, records, err := c.fetchPage(ctx, name)
	return records, err
}

// fetchPage retrieves a model's detail page and runs extraction on it.
// Every fetch failure collapses to ErrModelNotFound: for a single-model
// lookup an unreachable page and a missing page answer the same
// question. The underlying cause is logged for debugging.
func (c *Client) fetchPage(ctx context.Context, name string) (string, []model.TagRecord, error) {
	content, _, err := c.fetcher.Fetch(ctx, c.modelURL(name))
	if err != nil {
		c.logger.Debug("detail page fetch failed",
			"model", name,
			"error", err)
		return "", nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return content, c.extractor.ExtractDetails(name, content), nil
}

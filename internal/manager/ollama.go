package manager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Ollama talks to a local Ollama server over its HTTP API.
type Ollama struct {
	address string
	client  *http.Client
}

// OllamaOption configures an Ollama manager.
type OllamaOption func(*Ollama)

// WithAddress overrides the manager's base URL. A trailing slash is
// removed.
func WithAddress(address string) OllamaOption {
	return func(o *Ollama) {
		if address != "" {
			o.address = strings.TrimSuffix(address, "/")
		}
	}
}

// NewOllama creates a Manager backed by the Ollama HTTP API.
//
// Design decision: We integrate over the HTTP API rather than spawning
// the ollama executable because:
//  1. The API is versioned and documented; CLI output is not
//  2. No dependency on the binary being in PATH
//  3. Tests can stand in a plain HTTP server for the whole manager
func NewOllama(client *http.Client, opts ...OllamaOption) *Ollama {
	o := &Ollama{
		address: "http://127.0.0.1:11434",
		client:  client,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Interface satisfaction check.
var _ Manager = (*Ollama)(nil)

// ListInstalled implements Manager by querying /api/tags.
func (o *Ollama) ListInstalled(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.address+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build manager request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrManagerUnavailable, o.address)
	}
	defer resp.Body.Close() //nolint:errcheck // Close error on a read-only body is not actionable

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to list installed models: %s", strings.TrimSpace(string(body)))
	}

	var tagsResp struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, fmt.Errorf("failed to parse manager response: %w", err)
	}

	names := make([]string, 0, len(tagsResp.Models))
	for _, m := range tagsResp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Pull implements Manager by posting to /api/pull. Streaming progress
// is disabled so the call returns once the download settles.
func (o *Ollama) Pull(ctx context.Context, name string) error {
	payload, err := json.Marshal(map[string]any{
		"name":   name,
		"stream": false,
	})
	if err != nil {
		return fmt.Errorf("failed to encode pull request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.address+"/api/pull", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build manager request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrManagerUnavailable, o.address)
	}
	defer resp.Body.Close() //nolint:errcheck // Close error on a read-only body is not actionable

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s: %s", ErrPullFailed, name, strings.TrimSpace(string(body)))
	}

	// Drain the acknowledgement so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

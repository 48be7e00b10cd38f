package catalog

import "testing"

// TestExtractPageMeta tests metadata extraction from detail page HTML.
func TestExtractPageMeta(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and meta description", func(t *testing.T) {
		t.Parallel()

		content := `<html><head>
<title>llama3.1 - model library</title>
<meta name="description" content="Llama 3.1 is a family of open models.">
</head><body></body></html>`

		meta, err := ExtractPageMeta(content)
		if err != nil {
			t.Fatalf("failed to extract metadata: %v", err)
		}
		if meta.Title != "llama3.1 - model library" {
			t.Errorf("unexpected title: %q", meta.Title)
		}
		if meta.Description != "Llama 3.1 is a family of open models." {
			t.Errorf("unexpected description: %q", meta.Description)
		}
	})

	t.Run("falls back to the OpenGraph description", func(t *testing.T) {
		t.Parallel()

		content := `<html><head>
<meta property="og:description" content="Described only via OpenGraph.">
</head><body></body></html>`

		meta, err := ExtractPageMeta(content)
		if err != nil {
			t.Fatalf("failed to extract metadata: %v", err)
		}
		if meta.Description != "Described only via OpenGraph." {
			t.Errorf("unexpected description: %q", meta.Description)
		}
	})

	t.Run("keeps the first title when several exist", func(t *testing.T) {
		t.Parallel()

		content := `<html><head><title>first</title><title>second</title></head></html>`

		meta, err := ExtractPageMeta(content)
		if err != nil {
			t.Fatalf("failed to extract metadata: %v", err)
		}
		if meta.Title != "first" {
			t.Errorf("expected the first title, got %q", meta.Title)
		}
	})

	t.Run("leaves fields empty for pages without metadata", func(t *testing.T) {
		t.Parallel()

		meta, err := ExtractPageMeta(`<html><body><p>bare page</p></body></html>`)
		if err != nil {
			t.Fatalf("failed to extract metadata: %v", err)
		}
		if meta.Title != "" || meta.Description != "" {
			t.Errorf("expected empty metadata, got title=%q description=%q", meta.Title, meta.Description)
		}
	})
}

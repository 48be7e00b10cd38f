package main

import (
	"strings"
	"testing"
)

// TestNewTagsCmd tests the tags command creation.
func TestNewTagsCmd(t *testing.T) {
	t.Parallel()

	cmd := NewTagsCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "tags [model]" {
			t.Errorf("expected use 'tags [model]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})
}

// TestRunTagsCmd tests the tags command end to end against a fake catalog.
func TestRunTagsCmd(t *testing.T) {
	t.Run("prints one tag per line sorted", func(t *testing.T) {
		server := newCatalogServer()
		defer server.Close()

		output, err := executeCommand("tags", "llama3.1", "--host", server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output != "instruct\ntext\n" {
			t.Errorf("expected sorted tags one per line, got %q", output)
		}
	})

	t.Run("prints the latest tag for a model without markers", func(t *testing.T) {
		server := newCatalogServer()
		defer server.Close()

		output, err := executeCommand("tags", "gemma2", "--host", server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output != "latest\n" {
			t.Errorf("expected the implicit latest tag, got %q", output)
		}
	})

	t.Run("fails with exit code 2 for an absent model", func(t *testing.T) {
		server := newCatalogServer()
		defer server.Close()

		_, err := executeCommand("tags", "ghost", "--host", server.URL, "--lang", "en")
		if err == nil {
			t.Fatal("expected error for an absent model")
		}
		if exitCode(err) != 2 {
			t.Errorf("expected exit code 2, got %d", exitCode(err))
		}
		if !strings.Contains(err.Error(), "not found in the catalog") {
			t.Errorf("expected the localized not-found message, got: %v", err)
		}
		if !strings.Contains(err.Error(), server.URL+"/library") {
			t.Errorf("expected the catalog URL in the message, got: %v", err)
		}
	})

	t.Run("localizes the not-found message in spanish", func(t *testing.T) {
		server := newCatalogServer()
		defer server.Close()

		_, err := executeCommand("tags", "ghost", "--host", server.URL, "--lang", "es")
		if err == nil {
			t.Fatal("expected error for an absent model")
		}
		if !strings.Contains(err.Error(), "no se encontró en el catálogo") {
			t.Errorf("expected the Spanish not-found message, got: %v", err)
		}
	})

	t.Run("fails with a localized message when the model is missing", func(t *testing.T) {
		_, err := executeCommand("tags", "--lang", "en")
		if err == nil {
			t.Fatal("expected error for missing model")
		}
		if err.Error() != "model name is required" {
			t.Errorf("unexpected error: %v", err)
		}
		if exitCode(err) != 1 {
			t.Errorf("expected exit code 1, got %d", exitCode(err))
		}
	})
}

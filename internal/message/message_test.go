package message

import (
	"strings"
	"testing"
)

// TestMessagesEnglish verifies the English catalog.
func TestMessagesEnglish(t *testing.T) {
	t.Parallel()

	msgs := NewMessages(LanguageEnglish)

	t.Run("missing query", func(t *testing.T) {
		t.Parallel()
		if got := msgs.MissingQuery(); got != "search query is required" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("missing model", func(t *testing.T) {
		t.Parallel()
		if got := msgs.MissingModel(); got != "model name is required" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("model not found includes name and URL", func(t *testing.T) {
		t.Parallel()
		got := msgs.ModelNotFound("tulu3", "https://ollama.com/library")
		if !strings.Contains(got, "tulu3") {
			t.Errorf("expected message to contain model name, got %q", got)
		}
		if !strings.Contains(got, "https://ollama.com/library") {
			t.Errorf("expected message to contain catalog URL, got %q", got)
		}
	})

	t.Run("already installed", func(t *testing.T) {
		t.Parallel()
		if got := msgs.AlreadyInstalled("phi3:latest"); got != "phi3:latest is already installed" {
			t.Errorf("unexpected message: %q", got)
		}
	})
}

// TestMessagesSpanish verifies the Spanish catalog.
func TestMessagesSpanish(t *testing.T) {
	t.Parallel()

	msgs := NewMessages(LanguageSpanish)

	t.Run("missing query", func(t *testing.T) {
		t.Parallel()
		if got := msgs.MissingQuery(); got != "se requiere una consulta de búsqueda" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("model not found includes name and URL", func(t *testing.T) {
		t.Parallel()
		got := msgs.ModelNotFound("tulu3", "https://ollama.com/library")
		if !strings.Contains(got, "tulu3") {
			t.Errorf("expected message to contain model name, got %q", got)
		}
		if !strings.Contains(got, "no se encontró") {
			t.Errorf("expected Spanish text, got %q", got)
		}
	})

	t.Run("pull notices", func(t *testing.T) {
		t.Parallel()
		if got := msgs.Pulling("phi3"); !strings.Contains(got, "descargando") {
			t.Errorf("expected Spanish text, got %q", got)
		}
		if got := msgs.PullComplete("phi3"); !strings.Contains(got, "correctamente") {
			t.Errorf("expected Spanish text, got %q", got)
		}
	})
}

// TestMessagesLanguage verifies the formatter reports its language.
func TestMessagesLanguage(t *testing.T) {
	t.Parallel()

	if got := NewMessages(LanguageSpanish).Language(); got != LanguageSpanish {
		t.Errorf("expected LanguageSpanish, got %v", got)
	}
}

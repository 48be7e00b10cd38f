package message

import (
	"errors"
	"testing"
)

// TestParseLanguage tests language code resolution.
func TestParseLanguage(t *testing.T) {
	t.Parallel()

	t.Run("en resolves to English", func(t *testing.T) {
		t.Parallel()

		lang, err := ParseLanguage("en")
		if err != nil {
			t.Fatalf("failed to parse language: %v", err)
		}
		if lang != LanguageEnglish {
			t.Errorf("expected LanguageEnglish, got %v", lang)
		}
	})

	t.Run("es resolves to Spanish", func(t *testing.T) {
		t.Parallel()

		lang, err := ParseLanguage("es")
		if err != nil {
			t.Fatalf("failed to parse language: %v", err)
		}
		if lang != LanguageSpanish {
			t.Errorf("expected LanguageSpanish, got %v", lang)
		}
	})

	t.Run("regional variant resolves to base catalog", func(t *testing.T) {
		t.Parallel()

		lang, err := ParseLanguage("es-MX")
		if err != nil {
			t.Fatalf("failed to parse language: %v", err)
		}
		if lang != LanguageSpanish {
			t.Errorf("expected LanguageSpanish, got %v", lang)
		}
	})

	t.Run("empty code defaults to English", func(t *testing.T) {
		t.Parallel()

		lang, err := ParseLanguage("")
		if err != nil {
			t.Fatalf("expected no error for empty code, got %v", err)
		}
		if lang != LanguageEnglish {
			t.Errorf("expected LanguageEnglish, got %v", lang)
		}
	})

	t.Run("unsupported code returns ErrUnsupportedLanguage", func(t *testing.T) {
		t.Parallel()

		lang, err := ParseLanguage("fr")
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
		if lang != LanguageEnglish {
			t.Errorf("expected English fallback, got %v", lang)
		}
	})

	t.Run("malformed code returns ErrUnsupportedLanguage", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseLanguage("not a language"); !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
	})
}

// TestLanguageString tests the ISO code representation.
func TestLanguageString(t *testing.T) {
	t.Parallel()

	if got := LanguageEnglish.String(); got != "en" {
		t.Errorf("expected 'en', got %q", got)
	}
	if got := LanguageSpanish.String(); got != "es" {
		t.Errorf("expected 'es', got %q", got)
	}
}

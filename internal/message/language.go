package message

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned when the requested language has no
// message catalog. Supported codes are "en" and "es".
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language identifies a message catalog.
type Language int

const (
	// LanguageEnglish selects the English message catalog.
	LanguageEnglish Language = iota
	// LanguageSpanish selects the Spanish message catalog.
	LanguageSpanish
)

// supportedTags lists the catalogs in matcher priority order.
// English comes first so it wins ties and acts as the default.
var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
}

// matcher resolves user-supplied BCP 47 codes to a supported catalog.
// Using a matcher instead of string comparison accepts regional variants
// such as "es-MX" or "en-GB" without listing each one.
var matcher = language.NewMatcher(supportedTags)

// ParseLanguage resolves a language code to a supported Language.
// Codes that do not resolve to a supported catalog with high confidence
// return LanguageEnglish together with ErrUnsupportedLanguage; the caller
// decides whether to fail or fall back.
func ParseLanguage(code string) (Language, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return LanguageEnglish, nil
	}

	tag, err := language.Parse(trimmed)
	if err != nil {
		return LanguageEnglish, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return LanguageEnglish, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	if idx == 1 {
		return LanguageSpanish, nil
	}
	return LanguageEnglish, nil
}

// String returns the ISO 639-1 code of the language.
func (l Language) String() string {
	switch l {
	case LanguageSpanish:
		return "es"
	default:
		return "en"
	}
}

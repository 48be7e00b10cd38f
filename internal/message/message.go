package message

import "fmt"

// Messages formats user-facing command output in a fixed language.
// Construct one per invocation from the configured language and pass it
// to the commands that print localized text.
type Messages struct {
	lang Language
}

// NewMessages returns a formatter for the given language.
func NewMessages(lang Language) *Messages {
	return &Messages{lang: lang}
}

// Language returns the language the formatter was built with.
func (m *Messages) Language() Language {
	return m.lang
}

// MissingQuery is the error text when search is invoked without a query.
func (m *Messages) MissingQuery() string {
	switch m.lang {
	case LanguageSpanish:
		return "se requiere una consulta de búsqueda"
	default:
		return "search query is required"
	}
}

// MissingModel is the error text when a command that takes a model name
// is invoked without one.
func (m *Messages) MissingModel() string {
	switch m.lang {
	case LanguageSpanish:
		return "se requiere el nombre del modelo"
	default:
		return "model name is required"
	}
}

// ModelNotFound is the error text when a model does not exist in the
// catalog. The catalog URL is included so users can browse the listing.
func (m *Messages) ModelNotFound(name, catalogURL string) string {
	switch m.lang {
	case LanguageSpanish:
		return fmt.Sprintf("el modelo %q no se encontró en el catálogo: %s", name, catalogURL)
	default:
		return fmt.Sprintf("model %q not found in the catalog: %s", name, catalogURL)
	}
}

// AlreadyInstalled is the notice printed when pull finds the requested
// model already present locally.
func (m *Messages) AlreadyInstalled(ref string) string {
	switch m.lang {
	case LanguageSpanish:
		return fmt.Sprintf("%s ya está instalado", ref)
	default:
		return fmt.Sprintf("%s is already installed", ref)
	}
}

// Pulling is the progress notice printed before delegating a pull to the
// local model manager.
func (m *Messages) Pulling(ref string) string {
	switch m.lang {
	case LanguageSpanish:
		return fmt.Sprintf("descargando %s mediante el gestor de modelos local", ref)
	default:
		return fmt.Sprintf("pulling %s via the local model manager", ref)
	}
}

// PullComplete is the notice printed after a successful pull.
func (m *Messages) PullComplete(ref string) string {
	switch m.lang {
	case LanguageSpanish:
		return fmt.Sprintf("se descargó %s correctamente", ref)
	default:
		return fmt.Sprintf("successfully pulled %s", ref)
	}
}

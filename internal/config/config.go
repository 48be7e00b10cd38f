package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen for a clearnet catalog service and a model
// manager running on the same machine.
const (
	// DefaultHost is the base URL of the model catalog.
	// The catalog exposes no structured API; ollamascan works from its
	// rendered HTML pages, so only the host needs to be configurable.
	DefaultHost = "https://ollama.com"

	// DefaultManagerAddress is the local model manager's HTTP API address.
	// Port 11434 is the default for the Ollama daemon.
	// We use 127.0.0.1 instead of localhost to avoid DNS resolution overhead
	// and potential issues with IPv6 resolution on some systems.
	DefaultManagerAddress = "http://127.0.0.1:11434"

	// DefaultTimeout is set to 30 seconds per request. Catalog pages are
	// served from a CDN and normally answer within a second; the generous
	// timeout covers slow links without letting a search hang for minutes.
	DefaultTimeout = 30 * time.Second

	// DefaultSearchLimit caps how many matched models a single search
	// fetches detail pages for. Each model costs one HTTP request, so this
	// bounds both catalog load and search latency. Users can override it
	// via the --limit CLI flag.
	DefaultSearchLimit = 25

	// DefaultConcurrency is the number of detail pages fetched in parallel
	// during a search. Higher values shorten large searches but hammer the
	// catalog; 10 keeps a full default search under two request waves.
	DefaultConcurrency = 10

	// DefaultLanguage is the ISO 639-1 code of the message catalog used
	// for command output. Supported values are "en" and "es".
	DefaultLanguage = "en"

	// DefaultUserAgent identifies ollamascan in HTTP requests.
	// Using a descriptive User-Agent is good practice and allows operators
	// to identify this client's traffic in their logs.
	DefaultUserAgent = "ollamascan/1.0 (+https://github.com/nao1215/ollamascan)"

	// DefaultMaxBodySize limits the maximum response body size to read.
	// 5MB is sufficient for most HTML pages while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultTagContextLines is the number of lines scanned after a tag's
	// anchor when recovering its parameter count and size. The window is a
	// heuristic tuned to the catalog's current markup, not a guarantee;
	// widen it via the config file if the catalog layout changes.
	DefaultTagContextLines = 20

	// AppName is the application name used for XDG directory paths.
	AppName = "ollamascan"
)

// Config holds all configuration options for ollamascan.
// This struct is designed to be populated from CLI flags and the optional
// configuration file, then passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., CatalogConfig, ManagerConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Host is the base URL of the model catalog service.
	// All listing and detail page URLs are built from this value.
	Host string

	// ManagerAddress is the local model manager's HTTP API base URL.
	// The pull and installed commands delegate to this service.
	ManagerAddress string

	// Language is the ISO 639-1 code selecting the message catalog for
	// command output. The message package resolves it, including regional
	// variants such as "es-MX"; unsupported codes fail at startup.
	Language string

	// Limit is the maximum number of matched models a search processes.
	// It caps identifiers, not goroutines; Concurrency bounds parallelism.
	Limit int

	// Concurrency is the number of detail pages fetched in parallel.
	Concurrency int

	// Timeout is the per-request timeout for catalog and manager calls.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated to prevent memory exhaustion.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// TagContextLines is the size of the line window scanned for a tag's
	// parameter count and size after its anchor on the detail page.
	TagContextLines int

	// Headers are additional HTTP headers sent with every catalog request.
	// Loaded from the configuration file; useful for catalogs behind an
	// authenticating proxy. Values are masked in log output.
	Headers map[string]string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .ollamascan in the current directory,
	// the XDG config directory, and the user's home directory.
	ConfigFilePath string

	// JSONOutput enables JSON output instead of the aligned text table.
	// Mutually exclusive with MarkdownOutput.
	JSONOutput bool

	// MarkdownOutput enables Markdown output instead of the aligned text
	// table. Mutually exclusive with JSONOutput.
	MarkdownOutput bool

	// OutputFile is the output file path for search results.
	// When set, results are written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	OutputFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, limits).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Host:            DefaultHost,
		ManagerAddress:  DefaultManagerAddress,
		Language:        DefaultLanguage,
		Limit:           DefaultSearchLimit,
		Concurrency:     DefaultConcurrency,
		Timeout:         DefaultTimeout,
		UserAgent:       DefaultUserAgent,
		MaxBodySize:     DefaultMaxBodySize,
		TagContextLines: DefaultTagContextLines,
	}
}

// XDGConfigDir returns the XDG config directory for ollamascan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/ollamascan
// On macOS: ~/Library/Application Support/ollamascan
// On Windows: %APPDATA%\ollamascan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any network calls.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
//
// Language is intentionally not validated here; the message package owns
// language resolution and accepts regional variants a string comparison
// would reject.
func (c *Config) Validate() error {
	// Every catalog URL is derived from the host
	if c.Host == "" {
		return ErrEmptyHost
	}

	// The pull and installed commands need somewhere to delegate to
	if c.ManagerAddress == "" {
		return ErrEmptyManagerAddress
	}

	// Timeout must be positive; zero timeout would cause immediate failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	// Limit must be positive; zero would make every search empty
	if c.Limit <= 0 {
		return ErrInvalidLimit
	}

	// Concurrency must be positive; zero would stall the detail fetches
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// MaxBodySize must be non-negative; 0 means use the default
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	// The tag window must hold at least one line
	if c.TagContextLines <= 0 {
		return ErrInvalidTagContextLines
	}

	// JSONOutput and MarkdownOutput are mutually exclusive
	if c.JSONOutput && c.MarkdownOutput {
		return ErrConflictingReportFormats
	}

	return nil
}

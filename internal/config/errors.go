package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrEmptyHost is returned when the catalog host is empty.
	// Every listing and detail URL is built from the host, so there is
	// nothing ollamascan can do without one.
	ErrEmptyHost = errors.New("empty catalog host: provide a base URL such as https://ollama.com")

	// ErrEmptyManagerAddress is returned when the model manager address is
	// empty. The pull and installed commands delegate to this address.
	ErrEmptyManagerAddress = errors.New("empty manager address: provide the model manager's API URL")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidLimit is returned when the search limit is not positive.
	// A limit of zero would drop every matched model before the detail
	// fetches start, making every search empty.
	ErrInvalidLimit = errors.New("invalid limit: must be positive")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// A concurrency of zero would prevent any detail page from being fetched.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// A negative body size is invalid; use 0 to use the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidTagContextLines is returned when the tag context window is
	// not positive. The extractor needs at least one line after a tag's
	// anchor to recover its attributes.
	ErrInvalidTagContextLines = errors.New("invalid tag context lines: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)

package catalog

import "errors"

// Catalog lookup errors.
//
// Design decision: We use package-level sentinel errors so callers can
// classify failures with errors.Is() instead of matching message text.
// The CLI maps ErrModelNotFound to its own exit code.
var (
	// ErrModelNotFound is returned when a model has no reachable detail
	// page in the catalog.
	ErrModelNotFound = errors.New("model not found in catalog")
)

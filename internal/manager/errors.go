package manager

import "errors"

// Manager integration errors.
var (
	// ErrManagerUnavailable is returned when the local manager cannot
	// be reached at its configured address.
	ErrManagerUnavailable = errors.New("model manager is not reachable")

	// ErrPullFailed is returned when the manager rejects or aborts a
	// model download.
	ErrPullFailed = errors.New("model pull failed")
)

// Package message provides localized user-facing messages for ollamascan.
// It resolves a configured language code to one of the supported message
// catalogs (English, Spanish) and formats command output strings.
//
// Design decision: The language is an explicit value injected into each
// formatter rather than process-global state. This keeps command output
// deterministic in tests and avoids hidden ordering between configuration
// loading and message formatting.
package message

package catalog

import (
	"regexp"
	"sort"
	"strings"
)

// LibraryPath is the catalog path that lists every published model.
const LibraryPath = "/library"

// identifierRegex matches model links on the catalog listing page. The
// token charset includes ':' because some listings link straight to a
// tagged variant; a trailing bare colon is stripped after matching.
var identifierRegex = regexp.MustCompile(`/library/([A-Za-z0-9._:-]+)`)

// ExtractIdentifiers scans listing page content for model identifiers.
// Matches are stripped of the path prefix and any dangling tag
// separator, deduplicated, and returned in ascending order. The same
// content always yields the same result.
func ExtractIdentifiers(content string) []string {
	matches := identifierRegex.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool)
	unique := make([]string, 0, len(matches))
	for _, match := range matches {
		identifier := strings.TrimSuffix(match[1], ":")
		if identifier == "" || seen[identifier] {
			continue
		}
		seen[identifier] = true
		unique = append(unique, identifier)
	}

	sort.Strings(unique)
	return unique
}

// FilterIdentifiers narrows identifiers to those whose name contains the
// query, compared case-insensitively. Order is preserved.
//
// Design decision: We filter the full listing locally rather than using
// the catalog's hosted search because:
//  1. Hosted search matches descriptions too, so "tiny" returns models
//     whose names share nothing with the query
//  2. Substring filtering over the authoritative listing is exact
//  3. Results stay reproducible against a single page snapshot
func FilterIdentifiers(identifiers []string, query string) []string {
	q := strings.ToLower(query)

	filtered := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		if strings.Contains(strings.ToLower(identifier), q) {
			filtered = append(filtered, identifier)
		}
	}
	return filtered
}

package catalog

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/nao1215/ollamascan/internal/model"
)

// DetailExtractor parses one model's detail page into tag records.
//
// Design decision: Extraction is pattern matching over rendered markup,
// which is inherently tied to the catalog's current layout. Hiding it
// behind an interface keeps the client and commands stable if the
// heuristic ever has to be replaced with a structured parser.
type DetailExtractor interface {
	// ExtractDetails returns the tag records found in detailContent for
	// the given model. A page without tag markers yields exactly one
	// synthetic "latest" record so the model still appears in results.
	ExtractDetails(modelName, detailContent string) []model.TagRecord
}

// closingMarkers are the markup boundaries after which a line break is
// inserted before the windowed attribute search. Rendered pages arrive
// densely packed; breaking at element boundaries produces the
// line-oriented form the window heuristic anchors to.
var closingMarkers = []string{
	"</div>", "</a>", "</span>", "</p>", "</li>",
	"</h1>", "</h2>", "</h3>", "</td>", "</tr>",
	"<br>", "<br/>", "<br />",
}

// paramsRegex matches a parameter-count token such as "7B" or "70.6b".
var paramsRegex = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?B\b`)

// sizeRegex matches a download-size token such as "3.8GB" or "829 MB".
var sizeRegex = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?[MG]B\b`)

// RegexExtractor is the pattern-matching DetailExtractor used against
// the catalog's rendered pages.
type RegexExtractor struct {
	// contextLines bounds the window scanned after a tag's anchor line
	// for parameter-count and size tokens. Tuned to the catalog's
	// current layout, where both tokens sit within a few elements of
	// the tag link.
	contextLines int

	// logger receives a warning when a page yields tags but none of
	// their attributes, the usual signal that the layout changed.
	logger *slog.Logger
}

// RegexExtractorOption configures a RegexExtractor.
type RegexExtractorOption func(*RegexExtractor)

// WithContextLines overrides the attribute search window.
func WithContextLines(lines int) RegexExtractorOption {
	return func(e *RegexExtractor) {
		if lines > 0 {
			e.contextLines = lines
		}
	}
}

// WithExtractorLogger sets a custom logger.
func WithExtractorLogger(logger *slog.Logger) RegexExtractorOption {
	return func(e *RegexExtractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewRegexExtractor creates a RegexExtractor with the default window.
func NewRegexExtractor(opts ...RegexExtractorOption) *RegexExtractor {
	e := &RegexExtractor{
		contextLines: 20,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Interface satisfaction check.
var _ DetailExtractor = (*RegexExtractor)(nil)

// ExtractDetails implements DetailExtractor.
func (e *RegexExtractor) ExtractDetails(modelName, detailContent string) []model.TagRecord {
	tags := extractTags(modelName, detailContent)
	if len(tags) == 0 {
		e.logger.Debug("no tag markers on detail page, assuming a single variant",
			"model", modelName)
		return []model.TagRecord{model.NewSyntheticRecord(modelName)}
	}

	lines := splitAtMarkers(detailContent)

	records := make([]model.TagRecord, 0, len(tags))
	misses := 0
	for _, tag := range tags {
		params, size := e.extractAttributes(lines, modelName, tag)
		if params == model.NotAvailable && size == model.NotAvailable {
			misses++
		}
		records = append(records, model.TagRecord{
			Model:  modelName,
			Tag:    tag,
			Params: params,
			Size:   size,
		})
	}

	// Individual misses are expected noise, but a page where every tag
	// comes back empty-handed means the markup no longer matches the
	// heuristic and deserves attention.
	if misses == len(records) {
		e.logger.Warn("no attributes recovered for any tag; the page layout may have changed",
			"model", modelName,
			"tags", len(records))
	}

	return records
}

// extractTags finds every "<model>:<tag>" occurrence in the content and
// returns the tag names deduplicated and sorted.
func extractTags(modelName, content string) []string {
	re := regexp.MustCompile(regexp.QuoteMeta(modelName) + `:([A-Za-z0-9._-]+)`)
	matches := re.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool)
	unique := make([]string, 0, len(matches))
	for _, match := range matches {
		tag := match[1]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}

	sort.Strings(unique)
	return unique
}

// extractAttributes scans a bounded window of lines, beginning at the
// tag's first anchor line, for its parameter count and download size.
// A token that never appears in the window reports model.NotAvailable.
func (e *RegexExtractor) extractAttributes(lines []string, modelName, tag string) (params, size string) {
	params, size = model.NotAvailable, model.NotAvailable

	anchor := modelName + ":" + tag
	start := -1
	for i, line := range lines {
		if strings.Contains(line, anchor) {
			start = i
			break
		}
	}
	if start == -1 {
		return params, size
	}

	end := start + e.contextLines
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[start:end], "\n")

	if match := paramsRegex.FindString(window); match != "" {
		params = match
	}
	if match := sizeRegex.FindString(window); match != "" {
		size = match
	}
	return params, size
}

// splitAtMarkers inserts line breaks after common closing markers and
// splits the result. Not a parser; it only widens the line boundaries
// the window heuristic can anchor to.
func splitAtMarkers(content string) []string {
	normalized := content
	for _, marker := range closingMarkers {
		normalized = strings.ReplaceAll(normalized, marker, marker+"\n")
	}
	return strings.Split(normalized, "\n")
}

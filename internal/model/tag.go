package model

import (
	"sort"
	"strings"
)

const (
	// NotAvailable is the sentinel value for tag attributes that could not
	// be recovered from the catalog page. Extraction is best-effort, so a
	// missing parameter count or size is expected, not an error.
	NotAvailable = "N/A"

	// DefaultTag is the tag assigned to a model whose detail page exposes
	// no explicit tag markers. Single-variant models are published this way.
	DefaultTag = "latest"
)

// TagRecord is one variant of a catalog model.
// Params and Size are free-text approximations taken from the rendered
// page (e.g. "7B", "3.8 GB"); the catalog does not expose machine-readable
// values, so they are never normalized into numeric types.
type TagRecord struct {
	// Model is the bare model identifier (e.g. "llama3.1").
	Model string `json:"model"`

	// Tag is the variant name (e.g. "8b", "latest"). Never empty.
	Tag string `json:"tag"`

	// Params is the parameter count (e.g. "7B") or NotAvailable.
	Params string `json:"params"`

	// Size is the download size (e.g. "3.8GB") or NotAvailable.
	Size string `json:"size"`
}

// Ref returns the record's "model:tag" reference.
func (r TagRecord) Ref() string {
	return r.Model + ":" + r.Tag
}

// NewSyntheticRecord returns the record emitted for a model whose detail
// page exists but exposes no tag markers. The model still has exactly one
// pullable variant, so it is reported as "latest" with unknown attributes.
func NewSyntheticRecord(model string) TagRecord {
	return TagRecord{
		Model:  model,
		Tag:    DefaultTag,
		Params: NotAvailable,
		Size:   NotAvailable,
	}
}

// ResultSet is the ordered collection of tag records produced by one
// search invocation. It is sorted and deduplicated before rendering and
// discarded at process exit; nothing in the catalog client persists it.
type ResultSet []TagRecord

// Sort orders the set ascending by (Model, Tag).
// The concurrent detail fetches complete in arbitrary order, so this is
// what makes search output deterministic.
func (rs ResultSet) Sort() {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Model != rs[j].Model {
			return rs[i].Model < rs[j].Model
		}
		return rs[i].Tag < rs[j].Tag
	})
}

// Dedupe removes records that share the same (Model, Tag) pair, keeping
// the first occurrence. The set must already be sorted for stable output.
func (rs ResultSet) Dedupe() ResultSet {
	seen := make(map[string]bool, len(rs))
	unique := make(ResultSet, 0, len(rs))
	for _, r := range rs {
		key := strings.ToLower(r.Ref())
		if !seen[key] {
			seen[key] = true
			unique = append(unique, r)
		}
	}
	return unique
}

// Models returns the distinct model names in the set, in set order.
func (rs ResultSet) Models() []string {
	seen := make(map[string]bool, len(rs))
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		if !seen[r.Model] {
			seen[r.Model] = true
			names = append(names, r.Model)
		}
	}
	return names
}

// IsEmpty reports whether the set holds no records.
// Rendering skips empty sets entirely, including the header row.
func (rs ResultSet) IsEmpty() bool {
	return len(rs) == 0
}

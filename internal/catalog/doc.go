// Package catalog retrieves and interprets the hosted model catalog.
//
// The package is deliberately split along the pipeline's seams: Fetcher
// moves bytes, the identifier functions turn a listing page into model
// names, DetailExtractor turns a detail page into tag records, and
// Client composes them into the operations commands call. Every stage is
// stateless, so the same inputs always produce the same outputs.
//
// Extraction works on rendered page content with pattern matching, not
// on a structured API. That keeps the tool independent of any private
// endpoints, at the cost of heuristics that are tied to the catalog's
// current layout. Attributes that cannot be recovered degrade to "N/A"
// instead of failing the lookup.
package catalog

// Package report renders search results for display and export.
//
// This package contains writers for different output formats:
//   - TableWriter: Column-aligned text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown tables for documentation and sharing
//
// Design decision: We separate result rendering from result data
// structures (which are in the model package) to follow the single
// responsibility principle. This allows adding new output formats
// without modifying the core data structures.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output. Rendering
// happens only after a result set is fully computed; writers never
// stream partial results.
package report

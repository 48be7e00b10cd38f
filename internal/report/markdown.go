package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/ollamascan/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the result set as a Markdown document. Like the table
// writer, an empty result set writes nothing at all.
func (w *MarkdownWriter) Write(results model.ResultSet) (int, error) {
	if results.IsEmpty() {
		return 0, nil
	}

	md := markdown.NewMarkdown(w.output)

	md.H1("Model Search Results")
	md.PlainText("")

	rows := make([][]string, len(results))
	for i, record := range results {
		rows[i] = []string{record.Model, record.Tag, record.Params, record.Size}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Model", "Tag", "Params", "Size"},
		Rows:   rows,
	})
	md.PlainText("")

	md.HorizontalRule()
	md.PlainTextf("*Generated by [ollamascan](https://github.com/nao1215/ollamascan)*")

	return len(md.String()), md.Build()
}

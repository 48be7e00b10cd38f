package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nao1215/ollamascan/internal/model"
)

// TableWriter renders results as a column-aligned text table for
// terminal display.
//
// Design decision: We use plain aligned text rather than ANSI colors or
// box drawing because:
//  1. It works in all terminals without compatibility issues
//  2. It's easy to pipe to files, grep, or awk
//  3. The tab-separated shape survives even when alignment is stripped
type TableWriter struct {
	baseWriter
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer) *TableWriter {
	return &TableWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the result set as an aligned table. The header row is
// printed only when there is at least one record; an empty result set
// writes nothing, not even the header.
func (w *TableWriter) Write(results model.ResultSet) (int, error) {
	if results.IsEmpty() {
		return 0, nil
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "MODEL\tTAG\tPARAMS\tSIZE")
	for _, record := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", record.Model, record.Tag, record.Params, record.Size)
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	return w.output.Write([]byte(sb.String()))
}

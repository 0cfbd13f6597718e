package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nao1215/abuseipdb/internal/model"
)

// SimpleWriter writes plain text.
// Outcomes are a single line, which is what fail2ban captures in its log.
type SimpleWriter struct {
	baseWriter

	// verbose adds the category descriptions to catalog output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose includes category descriptions.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteOutcome writes the outcome message followed by a newline.
func (w *SimpleWriter) WriteOutcome(outcome *model.Outcome) (int, error) {
	return fmt.Fprintln(w.output, outcome.Message())
}

// WriteCategories writes an aligned ID / name table.
func (w *SimpleWriter) WriteCategories(categories []model.Category) (int, error) {
	if len(categories) == 0 {
		return fmt.Fprintln(w.output, "No matching categories.")
	}

	cw := &countingWriter{w: w.output}
	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)

	if w.verbose {
		fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	} else {
		fmt.Fprintln(tw, "ID\tNAME")
	}
	for _, c := range categories {
		if w.verbose {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", strconv.Itoa(c.ID), c.Name, c.Description)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", strconv.Itoa(c.ID), c.Name)
	}

	if err := tw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/abuseipdb/internal/model"
)

// JSONWriter writes JSON documents.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is compact unless an indent option is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteOutcome writes the outcome as a single JSON object.
func (w *JSONWriter) WriteOutcome(outcome *model.Outcome) (int, error) {
	return w.writeJSON(outcomeDocument{
		Outcome: outcome,
		Message: outcome.Message(),
	})
}

// WriteCategories writes the categories as a JSON array.
// An empty list is written as [] rather than null.
func (w *JSONWriter) WriteCategories(categories []model.Category) (int, error) {
	if categories == nil {
		categories = []model.Category{}
	}
	return w.writeJSON(categories)
}

// outcomeDocument adds the human-readable message to the outcome fields.
type outcomeDocument struct {
	*model.Outcome
	Message string `json:"message"`
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}

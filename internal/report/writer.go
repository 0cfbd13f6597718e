package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/abuseipdb/internal/model"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("unknown output format")

// Writer renders outcomes and categories.
type Writer interface {
	// WriteOutcome writes the result of one submission.
	WriteOutcome(outcome *model.Outcome) (int, error)

	// WriteCategories writes a list of report categories.
	WriteCategories(categories []model.Category) (int, error)
}

// Format names an output format.
type Format string

const (
	// FormatText is the default human-readable output.
	FormatText Format = "text"
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatMarkdown is GitHub-flavored Markdown.
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a name such as "json" into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// NewWriter returns the Writer for format, writing to output.
// Unknown formats fall back to text.
func NewWriter(format Format, output io.Writer) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output)
	}
}

// baseWriter holds the output destination shared by all writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

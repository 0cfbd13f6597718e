package report

import (
	"io"
	"strconv"

	"github.com/nao1215/abuseipdb/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter writes GitHub-flavored Markdown tables.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteOutcome writes the submission as a property table with an alert
// summarizing the result.
func (w *MarkdownWriter) WriteOutcome(outcome *model.Outcome) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2("AbuseIPDB Report")
	md.PlainText("")

	status := "-"
	if outcome.StatusCode != 0 {
		status = strconv.Itoa(outcome.StatusCode)
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"IP", "`" + outcome.Report.IP + "`"},
			{"Categories", "`" + outcome.Report.Categories + "`"},
			{"Comment", orDash(outcome.Report.Comment)},
			{"Outcome", outcome.Kind.String()},
			{"HTTP Status", status},
		},
	})
	md.PlainText("")

	switch {
	case outcome.Succeeded():
		md.Tip(outcome.Message())
	case outcome.Kind == model.OutcomeRejected:
		md.Warningf("%s", outcome.Message())
	default:
		md.Cautionf("%s", outcome.Message())
	}

	return len(md.String()), md.Build()
}

// WriteCategories writes the categories as an ID / name / description table.
func (w *MarkdownWriter) WriteCategories(categories []model.Category) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2("AbuseIPDB Categories")
	md.PlainText("")

	if len(categories) == 0 {
		md.PlainText("No matching categories.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{strconv.Itoa(c.ID), c.Name, c.Description}
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "Description"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

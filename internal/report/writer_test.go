package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/abuseipdb/internal/model"
)

// testOutcomes returns one outcome of each kind.
func testOutcomes() map[string]*model.Outcome {
	return map[string]*model.Outcome{
		"success":  model.NewSuccessOutcome(model.NewReport("1.2.3.4", "18,22", "sshd brute force")),
		"rejected": model.NewRejectedOutcome(model.NewReport("5.6.7.8", "18", "x"), 429),
		"error":    model.NewTransportFailureOutcome(model.NewReport("9.9.9.9", "18", "x"), errors.New("context deadline exceeded")),
	}
}

// TestParseFormat tests format name parsing.
func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" markdown ", FormatMarkdown, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

// TestNewWriter tests writer selection.
func TestNewWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, ok := NewWriter(FormatText, &buf).(*SimpleWriter); !ok {
		t.Error("expected SimpleWriter for text")
	}
	if _, ok := NewWriter(FormatJSON, &buf).(*JSONWriter); !ok {
		t.Error("expected JSONWriter for json")
	}
	if _, ok := NewWriter(FormatMarkdown, &buf).(*MarkdownWriter); !ok {
		t.Error("expected MarkdownWriter for markdown")
	}
	if _, ok := NewWriter("bogus", &buf).(*SimpleWriter); !ok {
		t.Error("expected SimpleWriter fallback")
	}
}

// TestSimpleWriter tests the plain text writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("outcome lines are exact", func(t *testing.T) {
		t.Parallel()

		want := map[string]string{
			"success":  "Successfully reported 1.2.3.4 to AbuseIPDB\n",
			"rejected": "Failed to report 5.6.7.8: 429\n",
			"error":    "Error reporting 9.9.9.9: context deadline exceeded\n",
		}
		for name, outcome := range testOutcomes() {
			var buf bytes.Buffer
			n, err := NewSimpleWriter(&buf).WriteOutcome(outcome)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}
			if buf.String() != want[name] {
				t.Errorf("%s: got %q, want %q", name, buf.String(), want[name])
			}
			if n != buf.Len() {
				t.Errorf("%s: reported %d bytes, wrote %d", name, n, buf.Len())
			}
		}
	})

	t.Run("categories table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).WriteCategories(model.Categories())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != len(model.Categories())+1 {
			t.Fatalf("expected header plus %d rows, got %d lines", len(model.Categories()), len(lines))
		}
		if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "NAME") {
			t.Errorf("unexpected header %q", lines[0])
		}
		if !strings.HasPrefix(lines[18], "18") || !strings.Contains(lines[18], "Brute-Force") {
			t.Errorf("unexpected row %q", lines[18])
		}
		if strings.Contains(buf.String(), "DESCRIPTION") {
			t.Error("descriptions should only appear in verbose mode")
		}
	})

	t.Run("verbose adds descriptions", func(t *testing.T) {
		t.Parallel()

		ssh, _ := model.LookupCategory(model.CategorySSH)

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).WriteCategories([]model.Category{ssh}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "DESCRIPTION") || !strings.Contains(buf.String(), "Secure Shell") {
			t.Errorf("expected description column, got %q", buf.String())
		}
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteCategories(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No matching categories") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outcome document", func(t *testing.T) {
		t.Parallel()

		for name, outcome := range testOutcomes() {
			var buf bytes.Buffer
			if _, err := NewJSONWriter(&buf).WriteOutcome(outcome); err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}

			var doc map[string]any
			if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
				t.Fatalf("%s: invalid JSON: %v", name, err)
			}
			if doc["outcome"] != name {
				t.Errorf("%s: outcome = %v", name, doc["outcome"])
			}
			if doc["message"] != outcome.Message() {
				t.Errorf("%s: message = %v, want %q", name, doc["message"], outcome.Message())
			}
			report, ok := doc["report"].(map[string]any)
			if !ok || report["ip"] != outcome.Report.IP {
				t.Errorf("%s: unexpected report %v", name, doc["report"])
			}
		}
	})

	t.Run("compact by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteOutcome(testOutcomes()["success"]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected a single line, got %q", buf.String())
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WriteOutcome(testOutcomes()["success"]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"outcome\"") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})

	t.Run("categories array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteCategories(model.FilterCategories("ssh")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got []model.Category
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(got) != 1 || got[0].ID != model.CategorySSH {
			t.Errorf("unexpected categories %+v", got)
		}
	})

	t.Run("empty categories is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteCategories(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected [], got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("outcome table and alert", func(t *testing.T) {
		t.Parallel()

		alerts := map[string]string{
			"success":  "[!TIP]",
			"rejected": "[!WARNING]",
			"error":    "[!CAUTION]",
		}
		for name, outcome := range testOutcomes() {
			var buf bytes.Buffer
			if _, err := NewMarkdownWriter(&buf).WriteOutcome(outcome); err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}

			output := buf.String()
			if !strings.Contains(output, "## AbuseIPDB Report") {
				t.Errorf("%s: missing heading", name)
			}
			if !strings.Contains(output, outcome.Report.IP) {
				t.Errorf("%s: missing IP", name)
			}
			if !strings.Contains(output, alerts[name]) {
				t.Errorf("%s: expected %s alert", name, alerts[name])
			}
			if !strings.Contains(output, outcome.Message()) {
				t.Errorf("%s: missing message", name)
			}
		}
	})

	t.Run("categories table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteCategories(model.Categories()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## AbuseIPDB Categories") {
			t.Error("missing heading")
		}
		for _, want := range []string{"Description", "Brute-Force", "IoT Targeted", "|"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("empty categories", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteCategories(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No matching categories.") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

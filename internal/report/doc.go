// Package report renders submission outcomes and the category catalog.
//
// Three formats are provided:
//   - SimpleWriter: the one-line messages fail2ban logs, and a plain table
//   - JSONWriter: structured output for scripts
//   - MarkdownWriter: tables for incident notes and documentation
//
// The data types live in the model package; this package only formats them.
package report

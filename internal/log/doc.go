// Package log provides the reporter's structured logger: the standard slog
// package wrapped in a handler that strips secrets before they are written.
//
// The reporter sends its API key in an HTTP header literally named "Key",
// so anything that reaches the log under that name, or under any of the
// usual credential names, is masked. Values that look like API keys or
// bearer tokens are masked regardless of the attribute name, and
// http.Header values are rewritten header by header.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("sending report", "key", apiKey) // key=***REDACTED***
//
// Outcome lines meant for the operator are not logged; the CLI prints them
// directly. The logger only carries diagnostics and goes to stderr.
package log

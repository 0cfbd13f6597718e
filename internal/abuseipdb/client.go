package abuseipdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nao1215/abuseipdb/internal/config"
	"github.com/nao1215/abuseipdb/internal/log"
	"github.com/nao1215/abuseipdb/internal/model"
)

// ErrMissingCredential is returned by NewClient when the API key is empty.
var ErrMissingCredential = errors.New("abuseipdb: API key is required")

// maxErrorBody caps how much of a rejection body is read for the debug log.
const maxErrorBody = 4 << 10

// Client reports IP addresses to AbuseIPDB.
// It is safe for concurrent use, though the CLI only ever sends one report.
type Client struct {
	endpoint   string
	credential config.Credential
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the report URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the HTTP client. Its Timeout bounds each submission.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client that authenticates with credential.
// Without options it posts to config.DefaultEndpoint with a
// config.DefaultTimeout client and discards logs.
func NewClient(credential config.Credential, opts ...Option) (*Client, error) {
	if credential.IsZero() {
		return nil, ErrMissingCredential
	}

	c := &Client{
		endpoint:   config.DefaultEndpoint,
		credential: credential,
		httpClient: &http.Client{Timeout: config.DefaultTimeout},
		logger:     log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL reports are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit sends report and classifies the result.
// It never returns nil. Fields are sent exactly as given.
func (c *Client) Submit(ctx context.Context, report model.Report) *model.Outcome {
	req, err := c.newRequest(ctx, report)
	if err != nil {
		return model.NewTransportFailureOutcome(report, err)
	}

	c.logger.Debug("submitting report",
		"endpoint", c.endpoint,
		"ip", report.IP,
		"categories", report.Categories,
		"headers", req.Header,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("report request failed", "ip", report.IP, "error", err)
		return model.NewTransportFailureOutcome(report, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		// Drain so the connection can be reused; the body is not inspected.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("report accepted", "ip", report.IP)
		return model.NewSuccessOutcome(report)
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	c.logger.Debug("report rejected",
		"ip", report.IP,
		"status", resp.StatusCode,
		"body", strings.TrimSpace(string(body)),
	)
	return model.NewRejectedOutcome(report, resp.StatusCode)
}

// newRequest builds the POST with the form body and the fixed header set.
func (c *Client) newRequest(ctx context.Context, report model.Report) (*http.Request, error) {
	form := url.Values{
		"ip":         {report.IP},
		"categories": {report.Categories},
		"comment":    {report.Comment},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Key", c.credential.Value())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

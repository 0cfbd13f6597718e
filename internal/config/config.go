package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultEndpoint is the AbuseIPDB v2 report endpoint.
	DefaultEndpoint = "https://api.abuseipdb.com/api/v2/report"

	// DefaultTimeout bounds the whole request, from dial to the last body byte.
	// An action hook that blocks for long holds up the supervisor that invoked it.
	DefaultTimeout = 10 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "abuseipdb"

	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv = "ABUSEIPDB_API_KEY"
)

// Config holds everything one invocation needs.
// It is built from defaults, then the configuration file, then flags, and
// passed down explicitly.
type Config struct {
	// Endpoint is the URL the report is POSTed to.
	Endpoint string

	// Timeout is the overall request timeout.
	Timeout time.Duration

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" form.
	// Empty means connect directly.
	ProxyAddress string

	// Credential is the API key sent in the Key header.
	Credential Credential

	// Strict enables validation of the IP address and category list
	// before anything is sent. Off by default: arguments are forwarded
	// verbatim.
	Strict bool

	// Verbose enables debug logging on stderr.
	Verbose bool

	// ConfigFilePath is the configuration file requested with --config.
	// Empty means search the default locations.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
	}
}

// XDGConfigDir returns the XDG config directory for the reporter.
// On Linux: ~/.config/abuseipdb
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the configuration file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// ApplyFile copies the values set in f over c.
// The credential is not touched here; see ResolveCredential.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}
	if f.Endpoint != "" {
		c.Endpoint = f.Endpoint
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, f.Timeout)
		}
		c.Timeout = d
	}
	if f.Proxy != "" {
		c.ProxyAddress = f.Proxy
	}
	if f.Strict {
		c.Strict = true
	}
	return nil
}

// Validate checks the configuration and returns the first problem found.
// It runs once, before any network activity.
func (c *Config) Validate() error {
	if c.Credential.IsZero() {
		return ErrMissingCredential
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Endpoint)
	}
	return nil
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/abuseipdb/internal/log"
)

// Credential is the AbuseIPDB API key.
// The value is only reachable through Value; String, LogValue and the fmt
// verbs print a mask.
type Credential struct {
	value string
}

// NewCredential wraps an API key. Surrounding whitespace is removed.
func NewCredential(value string) Credential {
	return Credential{value: strings.TrimSpace(value)}
}

// Value returns the raw key for the Key header.
func (c Credential) Value() string {
	return c.value
}

// IsZero reports whether no key is set.
func (c Credential) IsZero() bool {
	return c.value == ""
}

// String returns a mask, or an empty string when no key is set.
func (c Credential) String() string {
	if c.IsZero() {
		return ""
	}
	return log.MaskValue
}

// GoString keeps %#v from printing the key.
func (c Credential) GoString() string {
	return "config.Credential{" + c.String() + "}"
}

// LogValue implements slog.LogValuer.
func (c Credential) LogValue() slog.Value {
	return slog.StringValue(c.String())
}

// ResolveCredential finds the API key.
// Order: the ABUSEIPDB_API_KEY environment variable, then api_key in the
// configuration file, then the contents of api_key_file. An empty
// Credential with a nil error means none of them is set.
func ResolveCredential(f *File) (Credential, error) {
	if v := NewCredential(os.Getenv(APIKeyEnv)); !v.IsZero() {
		return v, nil
	}
	if f == nil {
		return Credential{}, nil
	}
	if v := NewCredential(f.APIKey); !v.IsZero() {
		return v, nil
	}
	if f.APIKeyFile != "" {
		data, err := os.ReadFile(f.APIKeyFile) //nolint:gosec // path comes from the operator's own config
		if err != nil {
			return Credential{}, fmt.Errorf("failed to read api_key_file: %w", err)
		}
		return NewCredential(string(data)), nil
	}
	return Credential{}, nil
}

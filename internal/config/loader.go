package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name searched in the current
// and home directories.
const DefaultConfigFile = ".abuseipdb"

// File is the structure of the YAML configuration file.
// Every key is optional.
type File struct {
	// APIKey is the AbuseIPDB API key. ABUSEIPDB_API_KEY takes precedence.
	APIKey string `yaml:"api_key,omitempty"`

	// APIKeyFile is a path to a file containing only the API key.
	// Used when APIKey is empty.
	APIKeyFile string `yaml:"api_key_file,omitempty"`

	// Endpoint overrides the report URL.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Timeout is a Go duration string such as "10s".
	Timeout string `yaml:"timeout,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" form.
	Proxy string `yaml:"proxy,omitempty"`

	// Strict enables argument validation before sending.
	Strict bool `yaml:"strict,omitempty"`
}

// LoadConfigFile reads the YAML configuration file at path.
// It returns ErrConfigNotFound if the file does not exist. Unknown keys are
// rejected so that a misspelled api_key is not silently ignored.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. .abuseipdb in the current directory
// 3. .abuseipdb in the user's home directory
// 4. config.yaml in the XDG config directory
//
// Returns the path of the first file found, or an empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, XDGConfigFile())

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// CheckPermissions returns ErrInsecurePermissions when path is readable by
// group or others. It always succeeds on Windows, where the mode bits do
// not describe access.
func CheckPermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o077 != 0 {
		return fmt.Errorf("%w: %s (mode %04o)", ErrInsecurePermissions, path, info.Mode().Perm())
	}
	return nil
}

// Package config holds the reporter's configuration: defaults, validation,
// the optional YAML configuration file, and the API credential.
//
// The credential is resolved once at startup, from the ABUSEIPDB_API_KEY
// environment variable or the configuration file, and is read-only after
// that. It never prints its value.
package config

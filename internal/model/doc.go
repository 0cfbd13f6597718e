// Package model defines the data structures shared across the reporter.
//
// This package contains the following main types:
//   - Report: The (ip, categories, comment) triple submitted in one request
//   - Outcome: The classified result of a single submission
//   - Category: An AbuseIPDB abuse category from the service catalog
//
// A Report lives for exactly one invocation. Nothing here is persisted.
package model

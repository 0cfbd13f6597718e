package model

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Report is one abuse report for a single IP address.
// It is built once from the command-line arguments and never mutated.
//
// The fields are kept as the raw strings the caller supplied. The service
// expects Categories as a comma-separated list of numeric codes, but the
// reporter forwards whatever it was given unless strict validation is on.
type Report struct {
	// IP is the offending address in textual form (IPv4 or IPv6).
	IP string `json:"ip"`

	// Categories is the comma-separated list of category codes, e.g. "18,22".
	Categories string `json:"categories"`

	// Comment is free text attached to the report.
	Comment string `json:"comment"`
}

// NewReport creates a Report from its three fields, verbatim.
func NewReport(ip, categories, comment string) Report {
	return Report{
		IP:         ip,
		Categories: categories,
		Comment:    comment,
	}
}

// Validate checks the report against the formats the service documents.
// It is only used in strict mode; by default reports are sent unvalidated.
// The first problem found is returned.
func (r Report) Validate() error {
	if _, err := netip.ParseAddr(r.IP); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidIP, r.IP)
	}
	if _, err := ParseCategories(r.Categories); err != nil {
		return err
	}
	return nil
}

// ParseCategories splits a comma-separated category list and checks that
// every entry is a known category code. Surrounding spaces are ignored.
func ParseCategories(list string) ([]Category, error) {
	if strings.TrimSpace(list) == "" {
		return nil, ErrEmptyCategories
	}

	parts := strings.Split(list, ",")
	result := make([]Category, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidCategory, part)
		}
		category, ok := LookupCategory(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, id)
		}
		result = append(result, category)
	}
	return result, nil
}

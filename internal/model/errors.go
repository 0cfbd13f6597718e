package model

import "errors"

// Report validation errors, returned by Report.Validate and ParseCategories.
var (
	// ErrInvalidIP is returned when the IP field is not a textual IPv4 or IPv6 address.
	ErrInvalidIP = errors.New("invalid IP address")

	// ErrEmptyCategories is returned when the category list is empty.
	ErrEmptyCategories = errors.New("no categories specified")

	// ErrInvalidCategory is returned when a category is not a known numeric code.
	ErrInvalidCategory = errors.New("invalid category")
)

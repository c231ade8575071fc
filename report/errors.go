package report

import "errors"

var (
	// ErrIOFailure wraps an underlying os.ReadFile/WriteFile error.
	ErrIOFailure = errors.New("report: I/O failure")

	// ErrMalformedPlan is returned when a YAML report plan fails to
	// parse or is missing required fields.
	ErrMalformedPlan = errors.New("report: malformed plan")

	// ErrMalformedBundle is returned when a JSON result bundle fails to
	// marshal or unmarshal.
	ErrMalformedBundle = errors.New("report: malformed bundle")
)

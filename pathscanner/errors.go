package pathscanner

import "errors"

var (
	// ErrMalformedWalk is returned when a W body's orientation-prefix
	// tokenization (spec.md §4.3 "Orientation substring rule") fails.
	ErrMalformedWalk = errors.New("pathscanner: malformed walk body")

	// ErrMalformedPath is returned when a P body token lacks a
	// trailing '+'/'-' orientation byte.
	ErrMalformedPath = errors.New("pathscanner: malformed path body")
)

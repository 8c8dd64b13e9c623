package vocab

import "errors"

var (
	// ErrMalformedLine is returned when a vocabulary line fails the expected
	// field count or numeric parse.
	ErrMalformedLine = errors.New("vocab: malformed line")

	// ErrMissingUnknown is returned when a term vocabulary lacks the reserved
	// UNKNOWN entry required for out-of-vocabulary substitution.
	ErrMissingUnknown = errors.New("vocab: missing UNKNOWN entry")
)

package corpus

import "errors"

var (
	// ErrMissingAnswer is returned when a pair file references an answer id
	// absent from the loaded answer pool. Broken referential integrity is
	// never tolerated; it aborts dataset construction.
	ErrMissingAnswer = errors.New("corpus: missing answer")

	// ErrMalformedPairLine is returned when a question/pair line does not
	// carry the expected four fields.
	ErrMalformedPairLine = errors.New("corpus: malformed pair line")

	// ErrStaleSnapshot indicates a snapshot no longer matches its sources.
	ErrStaleSnapshot = errors.New("corpus: stale snapshot")
)

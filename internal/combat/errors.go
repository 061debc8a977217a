package combat

import "errors"

// Parse failures carry one of these kinds so callers can decide between
// skipping a single item and discarding a whole input batch.
var (
	// ErrNotFound marks a catalog lookup miss (unknown monster or hero name).
	ErrNotFound = errors.New("not found")
	// ErrMalformedInteger marks a token that should be an integer but is not.
	ErrMalformedInteger = errors.New("malformed integer")
	// ErrMalformedGrammar marks input that matches no recognized shape.
	ErrMalformedGrammar = errors.New("malformed input")
)

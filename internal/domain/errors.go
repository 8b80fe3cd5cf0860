package domain

import "errors"

// ErrInvalidInput is the sentinel wrapped by every input-normalization
// failure raised while constructing domain entities. Callers use
// errors.Is(err, domain.ErrInvalidInput) to distinguish malformed input
// from a programming error.
var ErrInvalidInput = errors.New("invalid input")

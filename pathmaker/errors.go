package pathmaker

import "errors"

// ErrBadMaxExpansions indicates WithMaxExpansions was given a non-positive
// cap.
var ErrBadMaxExpansions = errors.New("pathmaker: MaxExpansions must be positive")

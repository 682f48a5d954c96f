package rankings

import "errors"

// ErrNotFound is returned when the ranking service has no record for the
// requested book.
var ErrNotFound = errors.New("ranked book not found")

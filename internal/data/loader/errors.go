package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceUnavailable means a whole source document could not be read.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrMalformedRecord means a single entry failed to decode or validate.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrDuplicateID means a movie id was already taken by an earlier entry.
	ErrDuplicateID = errors.New("duplicate movie id")
)

const (
	ResourceMovies  = "movies"
	ResourceReviews = "reviews"
)

// Diagnostic describes one skipped entry or one unavailable resource.
// Index is the position in the movie array, or -1 when it does not apply.
// Key is the review group key, if any.
type Diagnostic struct {
	Resource string
	Index    int
	Key      string
	Err      error
}

func (d Diagnostic) Error() string {
	switch {
	case d.Key != "" && d.Index >= 0:
		return fmt.Sprintf("%s[%s][%d]: %v", d.Resource, d.Key, d.Index, d.Err)
	case d.Key != "":
		return fmt.Sprintf("%s[%s]: %v", d.Resource, d.Key, d.Err)
	case d.Index >= 0:
		return fmt.Sprintf("%s[%d]: %v", d.Resource, d.Index, d.Err)
	default:
		return fmt.Sprintf("%s: %v", d.Resource, d.Err)
	}
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

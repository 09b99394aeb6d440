package deckhand

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the input path does not exist.
var ErrNotFound = errors.New("presentation file not found")

// ErrNotAFile indicates the input path exists but is not a regular file.
var ErrNotAFile = errors.New("path is not a regular file")

// ErrInvalidFormat indicates the input cannot be parsed as a valid deck.
var ErrInvalidFormat = errors.New("invalid presentation format")

// ErrClosed indicates an operation on a closed deck session.
var ErrClosed = errors.New("deck is closed")

// ErrSlideIndex indicates a slide index outside the deck's range. Recoverable:
// the failing call leaves session state unchanged.
var ErrSlideIndex = errors.New("slide index out of range")

// ErrNoTables indicates a slide holds no table shapes where one was required.
var ErrNoTables = errors.New("no tables on slide")

// ErrNoSection indicates a slide index with no section-summary entry, i.e. a
// slide never classified as a section header.
var ErrNoSection = errors.New("no section summary for slide")

// CellEditError reports a failed table-cell edit. When Partial is true the
// in-memory grid was already updated before the native write failed; the
// inconsistency is documented and not rolled back.
type CellEditError struct {
	Slide   int
	Row     int
	Col     int
	Partial bool
	Err     error
}

func (e *CellEditError) Error() string {
	if e.Partial {
		return fmt.Sprintf("cell edit on slide %d (%d,%d): grid updated but native write failed: %v",
			e.Slide, e.Row, e.Col, e.Err)
	}
	return fmt.Sprintf("cell edit on slide %d (%d,%d): %v", e.Slide, e.Row, e.Col, e.Err)
}

func (e *CellEditError) Unwrap() error {
	return e.Err
}

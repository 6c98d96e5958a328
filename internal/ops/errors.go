package ops

import (
	"errors"
	"fmt"
)

// ErrNoContacts is returned when listing a book that holds no contacts.
var ErrNoContacts = errors.New("no contacts found")

// ValidationError indicates bad or missing user input.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// RangeError indicates an index outside the current book.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index out of range: %d (have %d contacts)", e.Index, e.Len)
}

// NotFoundError indicates no contact has the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no contact with the exact name %q found", e.Name)
}

// AmbiguousError indicates more than one contact has the requested name.
type AmbiguousError struct {
	Name  string
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("found %d contacts named %q, delete by index instead", e.Count, e.Name)
}

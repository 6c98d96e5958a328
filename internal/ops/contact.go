// Package ops implements the contact book operations on top of a Store.
//
// Mutating operations change the book first and then call Store.Save. If the
// save fails the change is kept in memory and the save error is returned next
// to the result, so callers should check the result even when err != nil:
// see SaveFailed.
package ops

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/storage"
)

// Match is a contact together with its 1-based position in the book.
type Match struct {
	Index   int
	Contact model.Contact
}

// SaveFailed reports whether err only signals a failed save, meaning the
// in-memory change it accompanies still happened.
func SaveFailed(err error) bool {
	var se *storage.StorageError
	return errors.As(err, &se) && se.Op == "save"
}

// AddContact trims every field of c, appends it to the book and saves.
func AddContact(s Store, b *model.Book, c model.Contact) (model.Contact, error) {
	c = c.Trimmed()
	if err := c.Validate(); err != nil {
		return model.Contact{}, &ValidationError{Message: "name cannot be empty"}
	}

	b.Contacts = append(b.Contacts, c)
	return c, s.Save(b)
}

// ListContacts returns every contact with its 1-based index, in book order.
// The sequence can be ranged over any number of times. An empty book
// returns ErrNoContacts.
func ListContacts(b *model.Book) (iter.Seq2[int, model.Contact], error) {
	if b.Len() == 0 {
		return nil, ErrNoContacts
	}
	return func(yield func(int, model.Contact) bool) {
		for i, c := range b.Contacts {
			if !yield(i+1, c) {
				return
			}
		}
	}, nil
}

// SearchContacts returns the contacts whose name contains query,
// ignoring case. No matches is an empty result, not an error.
func SearchContacts(b *model.Book, query string) ([]Match, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, &ValidationError{Message: "empty search query"}
	}

	matches := []Match{}
	for i, c := range b.Contacts {
		if strings.Contains(strings.ToLower(c.Name), query) {
			matches = append(matches, Match{Index: i + 1, Contact: c})
		}
	}
	return matches, nil
}

// DeleteByIndex removes the contact at the 1-based index given as text.
func DeleteByIndex(s Store, b *model.Book, raw string) (model.Contact, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return model.Contact{}, &ValidationError{Field: "index", Message: "must be a whole number"}
	}
	if idx < 1 || idx > b.Len() {
		return model.Contact{}, &RangeError{Index: idx, Len: b.Len()}
	}

	return removeAt(s, b, idx-1)
}

// DeleteByName removes the single contact whose name equals name,
// ignoring case and surrounding whitespace. Several matches leave the
// book untouched and return an *AmbiguousError.
func DeleteByName(s Store, b *model.Book, name string) (model.Contact, error) {
	want := strings.ToLower(strings.TrimSpace(name))

	found := -1
	count := 0
	for i, c := range b.Contacts {
		if strings.ToLower(strings.TrimSpace(c.Name)) == want {
			if found < 0 {
				found = i
			}
			count++
		}
	}

	switch {
	case count == 0:
		return model.Contact{}, &NotFoundError{Name: strings.TrimSpace(name)}
	case count > 1:
		return model.Contact{}, &AmbiguousError{Name: strings.TrimSpace(name), Count: count}
	}
	return removeAt(s, b, found)
}

func removeAt(s Store, b *model.Book, i int) (model.Contact, error) {
	removed := b.Contacts[i]
	b.Contacts = slices.Delete(b.Contacts, i, i+1)
	return removed, s.Save(b)
}

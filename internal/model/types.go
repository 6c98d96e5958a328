// Package model defines the core data structures for cb.
package model

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Contact is a single entry in the contact book.
// Only Name is required; the other fields default to the empty string.
type Contact struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Book is the in-memory contact collection.
// Order is insertion order and duplicate names are allowed.
type Book struct {
	Contacts []Contact
}

// NewBook returns a book holding the given contacts.
func NewBook(contacts ...Contact) *Book {
	return &Book{Contacts: contacts}
}

// Len returns the number of contacts in the book.
func (b *Book) Len() int {
	return len(b.Contacts)
}

// Trimmed returns a copy of c with surrounding whitespace removed from every field.
func (c Contact) Trimmed() Contact {
	return Contact{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Email:   strings.TrimSpace(c.Email),
		Address: strings.TrimSpace(c.Address),
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate reports whether c satisfies the struct tag rules.
// Callers should trim first; whitespace counts as content here.
func (c Contact) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate.Struct(c)
}

// DisplayField returns s, or "-" when s is empty.
func DisplayField(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

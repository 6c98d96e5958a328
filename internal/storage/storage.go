// Package storage provides file system operations for the contact file.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/jacksmith/cb/internal/model"
)

// DefaultDataFile is the contact file used when nothing else is configured.
const DefaultDataFile = "contacts.json"

// StorageError reports a failed load or save of the contact file.
// A load StorageError is a warning: the accompanying book is empty and usable.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	switch e.Op {
	case "load":
		return fmt.Sprintf("failed to load %s, starting with an empty contact list: %v", e.Path, e.Err)
	case "save":
		return fmt.Sprintf("could not save contacts to %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage provides access to a single contact file.
// No file handle is held between calls.
type Storage struct {
	path string
}

// Open returns a Storage for the contact file at path.
// The file does not need to exist yet.
func Open(path string) *Storage {
	if path == "" {
		path = DefaultDataFile
	}
	return &Storage{path: path}
}

// Path returns the path to the contact file.
func (s *Storage) Path() string {
	return s.path
}

// Exists reports whether the contact file is present.
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the contact file into a new book.
// A missing file yields an empty book and no error. Any other failure
// (unreadable or malformed content) yields an empty book together with a
// *StorageError describing what was discarded.
func (s *Storage) Load() (*model.Book, error) {
	contacts, err := model.LoadContacts(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewBook(), nil
		}
		return model.NewBook(), &StorageError{Op: "load", Path: s.path, Err: err}
	}
	return model.NewBook(contacts...), nil
}

// Save overwrites the contact file with every contact in b.
// b itself is never modified.
func (s *Storage) Save(b *model.Book) error {
	if err := model.SaveContacts(s.path, b.Contacts); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// ReadRaw returns the contact file bytes, or nil if the file does not exist.
func (s *Storage) ReadRaw() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}

// ReplaceRaw validates data as a contact document and writes it verbatim.
// Malformed data is rejected and the existing file is left alone.
func (s *Storage) ReplaceRaw(data []byte) (*model.Book, error) {
	contacts, err := model.DecodeContacts(data)
	if err != nil {
		return nil, fmt.Errorf("edited file is not a valid contact list: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return nil, &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return model.NewBook(contacts...), nil
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// DecodeContacts parses a contact file document.
// The document must be a JSON array of objects. Missing keys decode to ""
// and unknown keys are ignored, but a non-string value for a known key
// rejects the whole document.
func DecodeContacts(data []byte) ([]Contact, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a list of contacts")
	}

	var contacts []Contact
	if err := json.Unmarshal(trimmed, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// EncodeContacts renders contacts as an indented JSON array.
// Keys are written in field order and non-ASCII text is written literally.
func EncodeContacts(contacts []Contact) ([]byte, error) {
	if contacts == nil {
		contacts = []Contact{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contacts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadContacts reads and decodes a contact file from the given path.
func LoadContacts(path string) ([]Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contact file %s: %w", path, err)
	}

	contacts, err := DecodeContacts(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contact file %s: %w", path, err)
	}
	return contacts, nil
}

// SaveContacts overwrites the file at path with the encoded contacts.
func SaveContacts(path string, contacts []Contact) error {
	data, err := EncodeContacts(contacts)
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write contact file %s: %w", path, err)
	}
	return nil
}

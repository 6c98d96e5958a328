// Package cli provides CLI infrastructure for cb.
package cli

import (
	"fmt"
	"strings"
)

// MatchOption resolves user input to one of options by exact match or
// unique prefix, ignoring case and surrounding whitespace.
// Returns an error if the input is empty, unknown, or ambiguous.
func MatchOption(input string, options []string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("no option given")
	}

	for _, opt := range options {
		if strings.ToLower(opt) == input {
			return opt, nil
		}
	}

	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), input) {
			matches = append(matches, opt)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown option %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous option %q matches: %s", input, strings.Join(matches, ", "))
	}
}

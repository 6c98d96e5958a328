package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditInEditor opens content in $VISUAL or $EDITOR and returns what was saved.
// The suffix names the temporary file (".json" gives syntax highlighting).
// changed reports whether the saved bytes differ from content.
func EditInEditor(content []byte, suffix string) (edited []byte, changed bool, err error) {
	editor := getEditor()
	if editor == "" {
		return nil, false, fmt.Errorf("EDITOR not set. Set it to edit the contact file")
	}

	tmpFile, err := os.CreateTemp("", "cb-*"+suffix)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, false, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, false, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, false, err
	}

	edited, err = os.ReadFile(tmpPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, !bytes.Equal(content, edited), nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
// The editor string may carry arguments, e.g. "code --wait".
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}

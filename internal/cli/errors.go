package cli

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return Red("error: ") + err.Error()
}

// FormatWarning returns a non-fatal problem prefixed with "warning: ".
func FormatWarning(err error) string {
	if err == nil {
		return ""
	}
	return Yellow("warning: ") + err.Error()
}

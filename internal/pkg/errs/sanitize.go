package errs

import "strings"

// sanitize normalizes values that end up in error messages.
// Newlines are replaced with spaces so a single error always
// renders as a single log line.
func sanitize(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	v = strings.ReplaceAll(v, "\r", " ")
	return v
}

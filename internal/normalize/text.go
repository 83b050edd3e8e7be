package normalize

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText collapses whitespace runs to single spaces and trims the result
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Boolean parses the Yes/No and checkmark conventions used on schedules.
// Unrecognized input returns nil rather than a guessed default.
func Boolean(value string) *bool {
	v := strings.ToLower(strings.TrimSpace(value))

	var b bool
	switch v {
	case "yes", "y", "true", "1", "✓", "✔", "x":
		b = true
	case "no", "n", "false", "0", "":
		b = false
	default:
		return nil
	}
	return &b
}

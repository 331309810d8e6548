package usecase

import "strings"

// ValidateReason reports whether a rejection reason is acceptable after
// trimming surrounding whitespace, and returns the trimmed value.
func ValidateReason(reason string) (string, bool) {
	trimmed := strings.TrimSpace(reason)
	return trimmed, trimmed != ""
}

package utils

import "strings"

// PickString returns the trimmed value when it holds a string and "" otherwise.
func PickString(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// StripCarriageReturns removes every CR and trims surrounding whitespace.
func StripCarriageReturns(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, "\r", ""))
}

// IsTruthy reports whether a flag-like value is one of 1, true or yes.
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

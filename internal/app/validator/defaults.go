package validator

import "strings"

// IsBlank reports whether the user submitted nothing but whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// OrExisting runs parse unless text is blank and an existing value is present,
// in which case the existing value is returned without validation.
func OrExisting[T any](text string, existing *T, parse func(string) (T, error)) (T, error) {
	if existing != nil && IsBlank(text) {
		return *existing, nil
	}
	return parse(text)
}

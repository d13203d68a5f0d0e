package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CollapseSpaces trims `s` and collapses internal whitespace runs to single spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase lowers `s` then capitalizes the first letter of every letter run;
// an apostrophe or hyphen starts a new run ("o'brien" -> "O'Brien").
func TitleCase(s string) string {
	return strings.Title(strings.ToLower(s))
}

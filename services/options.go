package services

import (
	"regexp"
	"strings"
)

var (
	nanWordRe    = regexp.MustCompile(`(?i)\bnan\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanStandardOptions normalizes the raw standard-feature strings of a
// machine: placeholder "nan" tokens are removed (whole-word, case
// insensitive, so "banana" survives), whitespace runs collapse to a single
// space, and entries that end up empty are dropped. Relative order is
// preserved and the function is idempotent.
func CleanStandardOptions(raw []string) []string {
	var cleaned []string
	for _, s := range raw {
		if s == "" {
			continue
		}
		s = nanWordRe.ReplaceAllString(s, " ")
		s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
	}
	return cleaned
}

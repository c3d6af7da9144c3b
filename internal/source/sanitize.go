package source

import (
	"regexp"
	"strings"
)

const maxTitleLen = 100

var (
	reInvalidRunes = regexp.MustCompile(`[<>:"/\\|?*]`)
	reMultiSpace   = regexp.MustCompile(`\s+`)
)

// SanitizeTitle strips characters that are invalid in file names, collapses
// whitespace, and caps the length so artifact paths stay portable.
func SanitizeTitle(title string) string {
	clean := reInvalidRunes.ReplaceAllString(title, "")
	clean = strings.TrimSpace(reMultiSpace.ReplaceAllString(clean, " "))

	if clean == "" {
		return "untitled"
	}

	if runes := []rune(clean); len(runes) > maxTitleLen {
		clean = strings.TrimSpace(string(runes[:maxTitleLen]))
	}
	return clean
}

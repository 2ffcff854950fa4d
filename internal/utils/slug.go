package utils

import (
	"regexp"
	"strings"
)

const slugMaxLength = 80

var (
	slugDropRe     = regexp.MustCompile(`[^a-z0-9\-_\s]+`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify converts free text into a file-name-safe slug: lowercase,
// non-alphanumerics dropped, whitespace runs become single dashes, capped
// at 80 characters. Text that slugs away to nothing yields "item".
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugDropRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")

	if len(s) > slugMaxLength {
		s = s[:slugMaxLength]
	}
	s = strings.Trim(s, "-")

	if s == "" {
		return "item"
	}
	return s
}

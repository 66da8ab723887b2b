package utils

import (
	"regexp"
	"strings"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a url-safe slug: lowercase, runs of
// non-alphanumerics collapsed into single hyphens, hyphens trimmed from
// both ends. "Pujas & Vrat" becomes "pujas-vrat".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

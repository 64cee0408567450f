package models

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL-safe identifier from a display name. It is
// deterministic: the same name always yields the same slug, and it is
// recomputed on every create and update rather than taken from the client.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Make derives a URL-safe slug from a title: lowercase, non-word
// characters stripped, whitespace collapsed to hyphens, hyphen runs
// collapsed. The transform is deterministic so the same title always
// yields the same slug.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix appends a short random suffix, used to resolve unique-slug
// collisions.
func WithSuffix(s string) string {
	return s + "-" + uuid.NewString()[:6]
}

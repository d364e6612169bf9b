package feed

import (
	"regexp"
	"strings"
	"time"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	slugHyphenPattern   = regexp.MustCompile(`\s+`)
	doubleHyphenPattern = regexp.MustCompile(`-{2,}`)
)

// Slug reduces a title to a lowercase hyphenated form safe for use as
// a filename.
func Slug(title string) string {
	s := slugStripPattern.ReplaceAllString(title, "")
	s = strings.TrimSpace(s)
	s = slugHyphenPattern.ReplaceAllString(s, "-")
	s = strings.ToLower(s)
	return doubleHyphenPattern.ReplaceAllString(s, "-")
}

// Identifier derives the document key used as the output file's base
// name: the zero-padded publish date followed by the title slug. Two
// same-day items whose titles reduce to the same slug collide; the
// later write wins.
func Identifier(title string, publishedAt time.Time) string {
	return publishedAt.Format("2006-01-02") + "-" + Slug(title)
}

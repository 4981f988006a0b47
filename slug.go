package newsimport

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen caps the title-derived part of a slug; the uniqueness suffix
// is appended after truncation.
const maxSlugLen = 100

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// diacriticStripper decomposes characters and drops combining marks, so
// "lança" slugifies to "lanca".
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe identifier from a title. Diacritics are
// stripped, the result is lowercased, runs of non-alphanumeric characters
// collapse to single hyphens, and the base-36 encoding of at is appended so
// identical titles imported at different times yield different slugs.
func Slugify(title string, at time.Time) string {
	s := title
	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	suffix := strconv.FormatInt(at.Unix(), 36)
	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}

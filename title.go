package newsimport

import (
	"regexp"
	"strings"
)

// siteNameSuffix matches a trailing separator plus site name, the
// "Article Title - Site Name" convention most news sites append to page
// titles. The final segment must be free of further separators so only the
// last one is stripped.
var siteNameSuffix = regexp.MustCompile(`\s+[-|•–—]\s+[^-|•–—]+$`)

// CleanTitle removes a trailing site-name suffix from an extracted title.
func CleanTitle(title string) string {
	return strings.TrimSpace(siteNameSuffix.ReplaceAllString(title, ""))
}

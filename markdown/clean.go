package markdown

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	// leadingImage matches a single image reference at the very start of the
	// document. The first line of extracted markdown is very often a
	// duplicate of the hero image.
	leadingImage = regexp.MustCompile(`^\s*!\[[^\]]*\]\([^)]+\)\s*`)

	leadingWhitespace = regexp.MustCompile(`(?m)^[ \t]+`)
	excessNewlines    = regexp.MustCompile(`\n{3,}`)
)

// Clean strips boilerplate from raw extracted markdown. It applies the
// default rule set, removes body images duplicating featuredImageURL (match
// by filename, query strings ignored), strips a single leading image
// reference, and normalizes whitespace.
func Clean(md, featuredImageURL string) string {
	for _, rule := range DefaultRules() {
		md = rule.Pattern.ReplaceAllString(md, rule.Replacement)
	}

	if name := imageFilename(featuredImageURL); name != "" {
		dup := regexp.MustCompile(`!\[[^\]]*\]\([^)]*` + regexp.QuoteMeta(name) + `[^)]*\)`)
		md = dup.ReplaceAllString(md, "")
	}

	md = leadingImage.ReplaceAllString(md, "")

	md = leadingWhitespace.ReplaceAllString(md, "")
	md = excessNewlines.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md)
}

// imageFilename extracts the final path element of an image URL, without
// any query string. Returns "" if the URL is empty or unparseable.
func imageFilename(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

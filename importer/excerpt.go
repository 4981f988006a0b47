package importer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Excerpt reduces a page description to plain text of at most limit runes.
// Embedded markup is stripped, whitespace is collapsed, and the result is
// cut at the limit without word-boundary awareness.
func Excerpt(description string, limit int) string {
	text := description
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div>" + description + "</div>")); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit]))
}

package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	boldItalic = regexp.MustCompile(`\*\*\*([^*\n]+)\*\*\*`)
	bold       = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	italic     = regexp.MustCompile(`\*([^*\n]+)\*`)

	// Images must convert before links: an image reference contains a link
	// reference as a substring.
	image = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	link  = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

	headers = buildHeaderPatterns()

	// Paragraph wrapping is header-unaware, so wrapped headers are unwrapped
	// afterwards.
	wrappedHeaderOpen  = regexp.MustCompile(`<p>\s*(<h[1-6]>)`)
	wrappedHeaderClose = regexp.MustCompile(`(</h[1-6]>)\s*</p>`)
	headerThenText     = regexp.MustCompile(`(</h[1-6]>)<br/>`)
	emptyParagraph     = regexp.MustCompile(`<p>\s*</p>\n?`)
)

type headerPattern struct {
	re    *regexp.Regexp
	open  string
	close string
}

func buildHeaderPatterns() []headerPattern {
	// Deepest first so "###" is not consumed by the "#" pattern.
	var ps []headerPattern
	for level := 6; level >= 1; level-- {
		ps = append(ps, headerPattern{
			re:    regexp.MustCompile(fmt.Sprintf(`(?m)^%s +(.+)$`, strings.Repeat("#", level))),
			open:  fmt.Sprintf("<h%d>", level),
			close: fmt.Sprintf("</h%d>", level),
		})
	}
	return ps
}

// ToHTML converts cleaned markdown to an HTML fragment. The mapping is
// deliberately narrow: headers, bold/italic, images, links, and paragraph
// conversion. Unsupported constructs pass through as literal text.
func ToHTML(md string) string {
	html := md

	for _, h := range headers {
		html = h.re.ReplaceAllString(html, h.open+"$1"+h.close)
	}

	html = boldItalic.ReplaceAllString(html, "<strong><em>$1</em></strong>")
	html = bold.ReplaceAllString(html, "<strong>$1</strong>")
	html = italic.ReplaceAllString(html, "<em>$1</em>")

	html = image.ReplaceAllString(html, `<img src="$2" alt="$1" class="article-image"/>`)
	html = link.ReplaceAllString(html, `<a href="$2" target="_blank" rel="noopener noreferrer">$1</a>`)

	// Blank-line-separated blocks become paragraphs; newlines inside a
	// block become line breaks.
	var blocks []string
	for _, block := range strings.Split(html, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		blocks = append(blocks, "<p>"+strings.ReplaceAll(block, "\n", "<br/>")+"</p>")
	}
	html = strings.Join(blocks, "\n")

	html = wrappedHeaderOpen.ReplaceAllString(html, "$1")
	html = wrappedHeaderClose.ReplaceAllString(html, "$1")
	html = headerThenText.ReplaceAllString(html, "$1<p>")
	html = emptyParagraph.ReplaceAllString(html, "")

	return strings.TrimSpace(html)
}

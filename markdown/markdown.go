// Package markdown cleans extracted article markdown and converts it to
// sanitized HTML fragments. Cleaning is pattern-based: source sites vary
// wildly in layout cruft, so removal rules matter far more than markdown
// fidelity, and the converter is intentionally narrow rather than a full
// CommonMark implementation.
package markdown

// Sanitize cleans raw extracted markdown and converts the result to HTML.
// featuredImageURL, when non-empty, is used to drop body images that would
// duplicate the hero image.
func Sanitize(md, featuredImageURL string) string {
	return ToHTML(Clean(md, featuredImageURL))
}

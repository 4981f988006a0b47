package newsimport

import "context"

// Metadata holds page metadata reported by the extraction provider.
// All fields are optional; source sites vary in what they expose.
type Metadata struct {
	// Title is the page title as published, including any site-name suffix.
	Title string

	// Description is the page description, possibly containing markup.
	Description string

	// OGImage is the URL of the page's social-preview image, used as the
	// candidate featured image.
	OGImage string
}

// ExtractResult holds the extracted content for a URL.
type ExtractResult struct {
	// Markdown is the main content of the page. Navigation and most
	// boilerplate have been excluded at the source, but not reliably.
	Markdown string

	// Metadata is the page metadata.
	Metadata Metadata
}

// Extractor extracts the main content of an article URL as markdown.
type Extractor interface {
	// Extract fetches and extracts the page behind url.
	// Returns EINVALID if the extractor is misconfigured or the URL is not
	// an absolute http(s) URL; EUNAVAILABLE if the provider fails or
	// returns no usable content. The context bounds the provider call.
	Extract(ctx context.Context, url string) (*ExtractResult, error)
}

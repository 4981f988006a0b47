// Package newsimport provides a content ingestion pipeline for news sites.
// It fetches a publicly reachable article URL through a third-party
// extraction API, cleans the returned markdown, converts it to sanitized
// HTML, deduplicates against previously imported URLs, and persists the
// result as a draft article.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, firecrawl/).
package newsimport

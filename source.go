package newsimport

import (
	"context"
	"time"
)

// Source represents a configured scrape target. The importer is invoked
// once per source URL; scheduling of when that happens belongs to the
// caller.
type Source struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	CategoryID    string     `json:"categoryId"`
	Enabled       bool       `json:"enabled"`
	LastScrapedAt *time.Time `json:"lastScrapedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	return nil
}

// SourceService represents a service for managing content sources.
type SourceService interface {
	// CreateSource creates a new source.
	// Returns ECONFLICT if the URL is already registered.
	CreateSource(ctx context.Context, source *Source) error

	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if the source does not exist.
	FindSourceByID(ctx context.Context, id string) (*Source, error)

	// FindSources retrieves sources matching the filter.
	FindSources(ctx context.Context, filter SourceFilter) ([]*Source, error)

	// UpdateSource updates an existing source.
	// Returns ENOTFOUND if the source does not exist.
	UpdateSource(ctx context.Context, id string, upd SourceUpdate) (*Source, error)

	// DeleteSource permanently removes a source. Articles already imported
	// from the source are unaffected.
	// Returns ENOTFOUND if the source does not exist.
	DeleteSource(ctx context.Context, id string) error
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SourceUpdate represents fields that can be updated on a source.
type SourceUpdate struct {
	Name          *string    `json:"name"`
	URL           *string    `json:"url"`
	CategoryID    *string    `json:"categoryId"`
	Enabled       *bool      `json:"enabled"`
	LastScrapedAt *time.Time `json:"lastScrapedAt"`
}

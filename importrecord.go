package newsimport

import (
	"context"
	"time"
)

// ImportStatusImported is the lifecycle marker written on every receipt.
// The field exists so future states can be added without a schema change.
const ImportStatusImported = "imported"

// ImportRecord is the receipt persisted after a successful import. The
// unique OriginalURL enforces at-most-once import per source URL. Records
// are created once and never updated or deleted by the pipeline.
type ImportRecord struct {
	ID            string    `json:"id"`
	OriginalURL   string    `json:"originalUrl"`
	OriginalTitle string    `json:"originalTitle"`
	ArticleID     string    `json:"articleId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the import record contains invalid fields.
func (r *ImportRecord) Validate() error {
	if r.OriginalURL == "" {
		return Errorf(EINVALID, "import record original URL required")
	}
	return nil
}

// ImportRecordService represents a service for managing import receipts.
type ImportRecordService interface {
	// CreateImportRecord creates a new import receipt.
	// Returns ECONFLICT if a receipt already exists for the URL.
	CreateImportRecord(ctx context.Context, record *ImportRecord) error

	// FindImportByURL retrieves the receipt for a source URL.
	// Returns ENOTFOUND if the URL has not been imported.
	FindImportByURL(ctx context.Context, url string) (*ImportRecord, error)

	// FindImportRecords retrieves receipts matching the filter,
	// newest first.
	FindImportRecords(ctx context.Context, filter ImportRecordFilter) ([]*ImportRecord, error)
}

// ImportRecordFilter represents a filter for FindImportRecords.
type ImportRecordFilter struct {
	OriginalURL *string `json:"originalUrl"`
	ArticleID   *string `json:"articleId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

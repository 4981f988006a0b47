package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rferraz/newsimport"
)

// Compile-time interface verification.
var _ newsimport.ImportRecordService = (*ImportRecordService)(nil)

// ImportRecordService implements newsimport.ImportRecordService using SQLite.
type ImportRecordService struct {
	db *DB
}

// NewImportRecordService creates a new ImportRecordService.
func NewImportRecordService(db *DB) *ImportRecordService {
	return &ImportRecordService{db: db}
}

// CreateImportRecord creates a new import receipt.
func (s *ImportRecordService) CreateImportRecord(ctx context.Context, record *newsimport.ImportRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()
	if record.Status == "" {
		record.Status = newsimport.ImportStatusImported
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO imported_articles (id, original_url, original_title, article_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.OriginalURL, record.OriginalTitle, nullableString(record.ArticleID),
		record.Status, record.CreatedAt.Format(time.RFC3339))

	if isUniqueConstraint(err) {
		return newsimport.Errorf(newsimport.ECONFLICT, "import record for %q already exists", record.OriginalURL)
	}
	return err
}

const importRecordColumns = "id, original_url, original_title, article_id, status, created_at"

// FindImportByURL retrieves the receipt for a source URL.
func (s *ImportRecordService) FindImportByURL(ctx context.Context, url string) (*newsimport.ImportRecord, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+importRecordColumns+" FROM imported_articles WHERE original_url = ?", url)

	record, err := scanImportRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, newsimport.Errorf(newsimport.ENOTFOUND, "no import found for %q", url)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func scanImportRecord(scan func(dest ...any) error) (*newsimport.ImportRecord, error) {
	var record newsimport.ImportRecord
	var articleID sql.NullString
	var createdAt string

	if err := scan(&record.ID, &record.OriginalURL, &record.OriginalTitle, &articleID,
		&record.Status, &createdAt); err != nil {
		return nil, err
	}

	record.ArticleID = articleID.String

	var err error
	if record.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &record, nil
}

// FindImportRecords retrieves receipts matching the filter, newest first.
func (s *ImportRecordService) FindImportRecords(ctx context.Context, filter newsimport.ImportRecordFilter) ([]*newsimport.ImportRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + importRecordColumns + " FROM imported_articles WHERE 1=1")

	if filter.OriginalURL != nil {
		query.WriteString(" AND original_url = ?")
		args = append(args, *filter.OriginalURL)
	}
	if filter.ArticleID != nil {
		query.WriteString(" AND article_id = ?")
		args = append(args, *filter.ArticleID)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*newsimport.ImportRecord
	for rows.Next() {
		record, err := scanImportRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

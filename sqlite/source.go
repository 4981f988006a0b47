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
var _ newsimport.SourceService = (*SourceService)(nil)

// SourceService implements newsimport.SourceService using SQLite.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

// CreateSource creates a new source. New sources are enabled unless set
// otherwise by the caller before creation.
func (s *SourceService) CreateSource(ctx context.Context, source *newsimport.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	source.ID = uuid.New().String()
	source.CreatedAt = time.Now().UTC()
	source.UpdatedAt = source.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_sources (id, name, url, category_id, enabled, last_scraped_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, source.ID, source.Name, source.URL, nullableString(source.CategoryID), source.Enabled,
		nullableTime(source.LastScrapedAt), source.CreatedAt.Format(time.RFC3339),
		source.UpdatedAt.Format(time.RFC3339))

	if isUniqueConstraint(err) {
		return newsimport.Errorf(newsimport.ECONFLICT, "source with URL %q already exists", source.URL)
	}
	return err
}

const sourceColumns = "id, name, url, category_id, enabled, last_scraped_at, created_at, updated_at"

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*newsimport.Source, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+sourceColumns+" FROM content_sources WHERE id = ?", id)

	source, err := scanSource(row.Scan)
	if err == sql.ErrNoRows {
		return nil, newsimport.Errorf(newsimport.ENOTFOUND, "source not found")
	}
	if err != nil {
		return nil, err
	}
	return source, nil
}

func scanSource(scan func(dest ...any) error) (*newsimport.Source, error) {
	var source newsimport.Source
	var categoryID sql.NullString
	var lastScrapedAt sql.NullString
	var createdAt, updatedAt string

	if err := scan(&source.ID, &source.Name, &source.URL, &categoryID, &source.Enabled,
		&lastScrapedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	source.CategoryID = categoryID.String

	var err error
	if source.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if source.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	if lastScrapedAt.Valid {
		t, err := parseRFC3339(lastScrapedAt.String, "last_scraped_at")
		if err != nil {
			return nil, err
		}
		source.LastScrapedAt = &t
	}

	return &source, nil
}

// FindSources retrieves sources matching the filter, ordered by name.
func (s *SourceService) FindSources(ctx context.Context, filter newsimport.SourceFilter) ([]*newsimport.Source, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + sourceColumns + " FROM content_sources WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Enabled != nil {
		query.WriteString(" AND enabled = ?")
		args = append(args, *filter.Enabled)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*newsimport.Source
	for rows.Next() {
		source, err := scanSource(rows.Scan)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// UpdateSource updates an existing source.
func (s *SourceService) UpdateSource(ctx context.Context, id string, upd newsimport.SourceUpdate) (*newsimport.Source, error) {
	source, err := s.FindSourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		source.Name = *upd.Name
	}
	if upd.URL != nil {
		source.URL = *upd.URL
	}
	if upd.CategoryID != nil {
		source.CategoryID = *upd.CategoryID
	}
	if upd.Enabled != nil {
		source.Enabled = *upd.Enabled
	}
	if upd.LastScrapedAt != nil {
		source.LastScrapedAt = upd.LastScrapedAt
	}
	source.UpdatedAt = time.Now().UTC()

	if err := source.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE content_sources
		SET name = ?, url = ?, category_id = ?, enabled = ?, last_scraped_at = ?, updated_at = ?
		WHERE id = ?
	`, source.Name, source.URL, nullableString(source.CategoryID), source.Enabled,
		nullableTime(source.LastScrapedAt), source.UpdatedAt.Format(time.RFC3339), id)

	if isUniqueConstraint(err) {
		return nil, newsimport.Errorf(newsimport.ECONFLICT, "source with URL %q already exists", source.URL)
	}
	if err != nil {
		return nil, err
	}

	return source, nil
}

// DeleteSource permanently removes a source.
func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM content_sources WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsimport.Errorf(newsimport.ENOTFOUND, "source not found")
	}

	return nil
}

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
var _ newsimport.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsimport.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle creates a new article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsimport.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.UpdatedAt = article.CreatedAt
	article.ContentHash = hashContent(article.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, slug, excerpt, content, featured_image, category_id, status, content_hash, created_at, updated_at, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, article.Slug, article.Excerpt, article.Content, article.FeaturedImage,
		nullableString(article.CategoryID), article.Status, article.ContentHash,
		article.CreatedAt.Format(time.RFC3339), article.UpdatedAt.Format(time.RFC3339),
		nullableTime(article.PublishedAt))

	if isUniqueConstraint(err) {
		return newsimport.Errorf(newsimport.ECONFLICT, "article slug %q already exists", article.Slug)
	}
	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsimport.Article, error) {
	return s.findOne(ctx, "id = ?", id)
}

// FindArticleBySlug retrieves an article by slug.
func (s *ArticleService) FindArticleBySlug(ctx context.Context, slug string) (*newsimport.Article, error) {
	return s.findOne(ctx, "slug = ?", slug)
}

const articleColumns = "id, title, slug, excerpt, content, featured_image, category_id, status, content_hash, created_at, updated_at, published_at"

func (s *ArticleService) findOne(ctx context.Context, where string, arg any) (*newsimport.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE "+where, arg)

	article, err := scanArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, newsimport.Errorf(newsimport.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// scanArticle maps a row onto an Article. scan is row.Scan or rows.Scan.
func scanArticle(scan func(dest ...any) error) (*newsimport.Article, error) {
	var article newsimport.Article
	var categoryID sql.NullString
	var createdAt, updatedAt string
	var publishedAt sql.NullString

	if err := scan(&article.ID, &article.Title, &article.Slug, &article.Excerpt, &article.Content,
		&article.FeaturedImage, &categoryID, &article.Status, &article.ContentHash,
		&createdAt, &updatedAt, &publishedAt); err != nil {
		return nil, err
	}

	article.CategoryID = categoryID.String

	var err error
	if article.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if article.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		t, err := parseRFC3339(publishedAt.String, "published_at")
		if err != nil {
			return nil, err
		}
		article.PublishedAt = &t
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsimport.ArticleFilter) ([]*newsimport.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}
	if filter.CategoryID != nil {
		query.WriteString(" AND category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsimport.Article
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// UpdateArticle updates an existing article.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd newsimport.ArticleUpdate) (*newsimport.Article, error) {
	article, err := s.FindArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		article.Title = *upd.Title
	}
	if upd.Excerpt != nil {
		article.Excerpt = *upd.Excerpt
	}
	if upd.Content != nil {
		article.Content = *upd.Content
		article.ContentHash = hashContent(article.Content)
	}
	if upd.CategoryID != nil {
		article.CategoryID = *upd.CategoryID
	}
	if upd.Status != nil {
		article.Status = *upd.Status
	}
	if upd.PublishedAt != nil {
		article.PublishedAt = upd.PublishedAt
	}
	article.UpdatedAt = time.Now().UTC()

	if err := article.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE articles
		SET title = ?, excerpt = ?, content = ?, category_id = ?, status = ?, content_hash = ?, updated_at = ?, published_at = ?
		WHERE id = ?
	`, article.Title, article.Excerpt, article.Content, nullableString(article.CategoryID),
		article.Status, article.ContentHash, article.UpdatedAt.Format(time.RFC3339),
		nullableTime(article.PublishedAt), id)

	if err != nil {
		return nil, err
	}

	return article, nil
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsimport.Errorf(newsimport.ENOTFOUND, "article not found")
	}

	return nil
}

package newsimport

import (
	"context"
	"time"
)

// Article statuses. The ingestion pipeline only ever creates drafts;
// publication is a separate editorial workflow.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// MaxExcerptLen is the maximum length, in runes, of an article excerpt.
const MaxExcerptLen = 300

// Article represents a content record. Articles created by the ingestion
// pipeline are always drafts with no publication date.
type Article struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage string     `json:"featuredImage"`
	CategoryID    string     `json:"categoryId"`
	Status        string     `json:"status"`
	ContentHash   string     `json:"contentHash"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Slug == "" {
		return Errorf(EINVALID, "article slug required")
	}
	switch a.Status {
	case StatusDraft, StatusPublished:
	default:
		return Errorf(EINVALID, "invalid article status %q", a.Status)
	}
	return nil
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle creates a new article.
	// Returns ECONFLICT if the slug is already taken.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticleBySlug retrieves an article by slug.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleBySlug(ctx context.Context, slug string) (*Article, error)

	// FindArticles retrieves articles matching the filter,
	// newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// UpdateArticle updates an existing article.
	// Returns ENOTFOUND if the article does not exist.
	UpdateArticle(ctx context.Context, id string, upd ArticleUpdate) (*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID         *string `json:"id"`
	Slug       *string `json:"slug"`
	Status     *string `json:"status"`
	CategoryID *string `json:"categoryId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleUpdate represents fields that can be updated on an article.
type ArticleUpdate struct {
	Title       *string    `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	CategoryID  *string    `json:"categoryId"`
	Status      *string    `json:"status"`
	PublishedAt *time.Time `json:"publishedAt"`
}

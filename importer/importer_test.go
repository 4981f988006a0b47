package importer_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rferraz/newsimport"
	"github.com/rferraz/newsimport/importer"
	"github.com/rferraz/newsimport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// notImported is a FindImportByURL that reports no prior import.
func notImported(ctx context.Context, url string) (*newsimport.ImportRecord, error) {
	return nil, newsimport.Errorf(newsimport.ENOTFOUND, "no import found for %q", url)
}

func extractorReturning(result *newsimport.ExtractResult) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(ctx context.Context, url string) (*newsimport.ExtractResult, error) {
			return result, nil
		},
	}
}

func TestImporter_Import_Created(t *testing.T) {
	t.Parallel()

	var createdArticle *newsimport.Article
	var createdRecord *newsimport.ImportRecord

	imp := &importer.Importer{
		Articles: &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article *newsimport.Article) error {
				article.ID = "article-1"
				createdArticle = article
				return nil
			},
		},
		Imports: &mock.ImportRecordService{
			FindImportByURLFn: notImported,
			CreateImportRecordFn: func(ctx context.Context, record *newsimport.ImportRecord) error {
				record.ID = "record-1"
				createdRecord = record
				return nil
			},
		},
		Extractor: extractorReturning(&newsimport.ExtractResult{
			Markdown: "# Hello\n\nWorld",
			Metadata: newsimport.Metadata{
				Title:       "Hello World - Example.com",
				Description: "A greeting from the internet.",
			},
		}),
		Logger: discardLogger(),
		Now:    func() time.Time { return time.Unix(1700000000, 0) },
	}

	result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/a"})
	require.NoError(t, err)

	assert.Equal(t, importer.OutcomeCreated, result.Outcome)
	assert.Equal(t, "article-1", result.ArticleID)
	assert.Equal(t, "Hello World", result.Title)

	require.NotNil(t, createdArticle)
	assert.Equal(t, "Hello World", createdArticle.Title)
	assert.Equal(t, newsimport.StatusDraft, createdArticle.Status)
	assert.Nil(t, createdArticle.PublishedAt)
	assert.Contains(t, createdArticle.Content, "<h1>Hello</h1>")
	assert.NotContains(t, createdArticle.Content, "<p><h1>")
	assert.Contains(t, createdArticle.Slug, "hello-world")

	require.NotNil(t, createdRecord)
	assert.Equal(t, "https://example.com/a", createdRecord.OriginalURL)
	assert.Equal(t, "Hello World - Example.com", createdRecord.OriginalTitle, "receipt keeps the pre-cleaning title")
	assert.Equal(t, "article-1", createdRecord.ArticleID)
}

func TestImporter_Import_Duplicate(t *testing.T) {
	t.Parallel()

	t.Run("prior receipt short-circuits before extraction", func(t *testing.T) {
		t.Parallel()

		var extractCalls atomic.Int64

		imp := &importer.Importer{
			Articles: &mock.ArticleService{},
			Imports: &mock.ImportRecordService{
				FindImportByURLFn: func(ctx context.Context, url string) (*newsimport.ImportRecord, error) {
					return &newsimport.ImportRecord{ArticleID: "existing-1"}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(ctx context.Context, url string) (*newsimport.ExtractResult, error) {
					extractCalls.Add(1)
					return nil, nil
				},
			},
			Logger: discardLogger(),
		}

		result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/a"})
		require.NoError(t, err)

		assert.Equal(t, importer.OutcomeDuplicate, result.Outcome)
		assert.Equal(t, "existing-1", result.ExistingArticleID)
		assert.Equal(t, int64(0), extractCalls.Load(), "no extraction for a known URL")
	})

	t.Run("conflict on article insert resolves to duplicate", func(t *testing.T) {
		t.Parallel()

		// Simulates the check-then-write race: the receipt appears between
		// the idempotency check and the article insert.
		var checks atomic.Int64

		imp := &importer.Importer{
			Articles: &mock.ArticleService{
				CreateArticleFn: func(ctx context.Context, article *newsimport.Article) error {
					return newsimport.Errorf(newsimport.ECONFLICT, "article slug already exists")
				},
			},
			Imports: &mock.ImportRecordService{
				FindImportByURLFn: func(ctx context.Context, url string) (*newsimport.ImportRecord, error) {
					if checks.Add(1) == 1 {
						return nil, newsimport.Errorf(newsimport.ENOTFOUND, "no import")
					}
					return &newsimport.ImportRecord{ArticleID: "winner-1"}, nil
				},
			},
			Extractor: extractorReturning(&newsimport.ExtractResult{
				Markdown: "Body",
				Metadata: newsimport.Metadata{Title: "Racy Title"},
			}),
			Logger: discardLogger(),
		}

		result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/race"})
		require.NoError(t, err, "a uniqueness violation is a recoverable branch, not a failure")

		assert.Equal(t, importer.OutcomeDuplicate, result.Outcome)
		assert.Equal(t, "winner-1", result.ExistingArticleID)
	})
}

func TestImporter_Import_ExtractionFailed(t *testing.T) {
	t.Parallel()

	var articleInserts, recordInserts atomic.Int64

	imp := &importer.Importer{
		Articles: &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article *newsimport.Article) error {
				articleInserts.Add(1)
				return nil
			},
		},
		Imports: &mock.ImportRecordService{
			FindImportByURLFn: notImported,
			CreateImportRecordFn: func(ctx context.Context, record *newsimport.ImportRecord) error {
				recordInserts.Add(1)
				return nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(ctx context.Context, url string) (*newsimport.ExtractResult, error) {
				return nil, newsimport.Errorf(newsimport.EUNAVAILABLE, "firecrawl HTTP 500: provider down")
			},
		},
		Logger: discardLogger(),
	}

	result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/a"})
	require.Error(t, err)

	assert.Equal(t, importer.OutcomeFailed, result.Outcome)
	assert.Equal(t, importer.StageExtract, result.Stage)
	assert.Contains(t, result.Message, "provider down")
	assert.Equal(t, int64(0), articleInserts.Load(), "nothing written on extraction failure")
	assert.Equal(t, int64(0), recordInserts.Load())
}

func TestImporter_Import_ConfigError(t *testing.T) {
	t.Parallel()

	imp := &importer.Importer{
		Articles: &mock.ArticleService{},
		Imports:  &mock.ImportRecordService{FindImportByURLFn: notImported},
		Extractor: &mock.Extractor{
			ExtractFn: func(ctx context.Context, url string) (*newsimport.ExtractResult, error) {
				return nil, newsimport.Errorf(newsimport.EINVALID, "firecrawl API key required")
			},
		},
		Logger: discardLogger(),
	}

	result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/a"})
	require.Error(t, err)

	assert.Equal(t, importer.OutcomeFailed, result.Outcome)
	assert.Equal(t, importer.StageConfig, result.Stage)
}

func TestImporter_Import_PersistFailed(t *testing.T) {
	t.Parallel()

	imp := &importer.Importer{
		Articles: &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article *newsimport.Article) error {
				return newsimport.Errorf(newsimport.EINVALID, "category reference does not exist")
			},
		},
		Imports:   &mock.ImportRecordService{FindImportByURLFn: notImported},
		Extractor: extractorReturning(&newsimport.ExtractResult{Markdown: "Body", Metadata: newsimport.Metadata{Title: "T"}}),
		Logger:    discardLogger(),
	}

	result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/a"})
	require.Error(t, err)

	assert.Equal(t, importer.OutcomeFailed, result.Outcome)
	assert.Equal(t, importer.StagePersist, result.Stage)
}

func TestImporter_Import_ReceiptWriteIsBestEffort(t *testing.T) {
	t.Parallel()

	imp := &importer.Importer{
		Articles: &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article *newsimport.Article) error {
				article.ID = "article-1"
				return nil
			},
		},
		Imports: &mock.ImportRecordService{
			FindImportByURLFn: notImported,
			CreateImportRecordFn: func(ctx context.Context, record *newsimport.ImportRecord) error {
				return newsimport.Errorf(newsimport.EINTERNAL, "disk full")
			},
		},
		Extractor: extractorReturning(&newsimport.ExtractResult{Markdown: "Body", Metadata: newsimport.Metadata{Title: "T"}}),
		Logger:    discardLogger(),
	}

	result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/a"})
	require.NoError(t, err, "a lost receipt must not fail a durable article")

	assert.Equal(t, importer.OutcomeCreated, result.Outcome)
	assert.Equal(t, "article-1", result.ArticleID)
}

func TestImporter_Import_PlaceholderTitle(t *testing.T) {
	t.Parallel()

	var createdArticle *newsimport.Article

	imp := &importer.Importer{
		Articles: &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article *newsimport.Article) error {
				article.ID = "article-1"
				createdArticle = article
				return nil
			},
		},
		Imports: &mock.ImportRecordService{
			FindImportByURLFn:    notImported,
			CreateImportRecordFn: func(ctx context.Context, record *newsimport.ImportRecord) error { return nil },
		},
		Extractor: extractorReturning(&newsimport.ExtractResult{Markdown: "Body"}),
		Logger:    discardLogger(),
	}

	result, err := imp.Import(context.Background(), importer.Request{URL: "https://example.com/a"})
	require.NoError(t, err)

	assert.Equal(t, importer.OutcomeCreated, result.Outcome)
	require.NotNil(t, createdArticle)
	assert.Equal(t, importer.PlaceholderTitle, createdArticle.Title)
	assert.Contains(t, createdArticle.Slug, "imported-article")
}

func TestImporter_Import_CategoryFromRequest(t *testing.T) {
	t.Parallel()

	var createdArticle *newsimport.Article

	imp := &importer.Importer{
		Articles: &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article *newsimport.Article) error {
				createdArticle = article
				return nil
			},
		},
		Imports: &mock.ImportRecordService{
			FindImportByURLFn:    notImported,
			CreateImportRecordFn: func(ctx context.Context, record *newsimport.ImportRecord) error { return nil },
		},
		Extractor: extractorReturning(&newsimport.ExtractResult{Markdown: "Body", Metadata: newsimport.Metadata{Title: "T"}}),
		Logger:    discardLogger(),
	}

	_, err := imp.Import(context.Background(), importer.Request{
		URL:        "https://example.com/a",
		CategoryID: "cat-9",
	})
	require.NoError(t, err)
	require.NotNil(t, createdArticle)
	assert.Equal(t, "cat-9", createdArticle.CategoryID)
}

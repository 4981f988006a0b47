// Package importer provides the import orchestration for single article
// URLs. It coordinates the idempotency check, content extraction, text
// transformation, and the two-phase persistence of the draft article and
// its import receipt.
package importer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rferraz/newsimport"
	"github.com/rferraz/newsimport/markdown"
)

// PlaceholderTitle is used when the provider returns no usable title.
// Producing an editable draft beats rejecting ambiguous input.
const PlaceholderTitle = "Imported Article"

// Outcome discriminates the terminal states of an import.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeFailed    Outcome = "failed"
)

// Stage identifies where a failed import stopped.
type Stage string

const (
	StageConfig    Stage = "config"
	StageExtract   Stage = "extract"
	StageTransform Stage = "transform"
	StagePersist   Stage = "persist"
)

// Request describes a single import invocation.
type Request struct {
	// URL is the article to import.
	URL string

	// CategoryID files the draft under a category. Optional; callers
	// importing on behalf of a source usually pass the source's default.
	CategoryID string
}

// Result is the outcome of an import. Exactly one of the three shapes is
// populated, keyed by Outcome: Created carries the new draft's fields,
// Duplicate the existing article reference, Failed the stage and message.
type Result struct {
	Outcome Outcome

	// Created.
	ArticleID     string
	Title         string
	Slug          string
	Excerpt       string
	FeaturedImage string

	// Duplicate. May be empty if the prior receipt lost its article link.
	ExistingArticleID string

	// Failed.
	Stage   Stage
	Message string
}

// Importer runs the import state machine. All collaborators are required
// except Logger and Now, which default to slog.Default and time.Now.
type Importer struct {
	Articles  newsimport.ArticleService
	Imports   newsimport.ImportRecordService
	Extractor newsimport.Extractor

	Logger *slog.Logger
	Now    func() time.Time
}

// Import runs the pipeline for one URL. A Result is returned in every
// case; err is non-nil only when the outcome is OutcomeFailed, so callers
// can propagate it without re-inspecting the result.
//
// A failure at any stage aborts with no partial write beyond what already
// committed. The receipt write after a successful article insert is
// best-effort: losing a receipt only opens a future duplicate-import
// opportunity, which is a lesser harm than discarding a good article.
func (imp *Importer) Import(ctx context.Context, req Request) (*Result, error) {
	// Stage 1: idempotency gate. A prior receipt means no new work; this
	// is a normal outcome, expected under schedulers re-scanning
	// overlapping URL sets.
	existing, err := imp.Imports.FindImportByURL(ctx, req.URL)
	if err == nil {
		return &Result{
			Outcome:           OutcomeDuplicate,
			ExistingArticleID: existing.ArticleID,
		}, nil
	}
	if newsimport.ErrorCode(err) != newsimport.ENOTFOUND {
		return failed(StagePersist, err)
	}

	// Stage 2: extraction. Nothing has been written, so any failure aborts
	// cleanly. A misconfigured extractor reports EINVALID before making a
	// network call and is surfaced as a config failure, not an extraction
	// one.
	extracted, err := imp.Extractor.Extract(ctx, req.URL)
	if err != nil {
		stage := StageExtract
		if newsimport.ErrorCode(err) == newsimport.EINVALID {
			stage = StageConfig
		}
		return failed(stage, err)
	}

	// Stage 3: transform. Pure derivations; cannot fail.
	title := newsimport.CleanTitle(extracted.Metadata.Title)
	if title == "" {
		title = PlaceholderTitle
	}

	article := &newsimport.Article{
		Title:         title,
		Slug:          newsimport.Slugify(title, imp.now()),
		Excerpt:       Excerpt(extracted.Metadata.Description, newsimport.MaxExcerptLen),
		Content:       markdown.Sanitize(extracted.Markdown, extracted.Metadata.OGImage),
		FeaturedImage: extracted.Metadata.OGImage,
		CategoryID:    req.CategoryID,
		Status:        newsimport.StatusDraft,
	}

	// Stage 4: persist. The unique constraints are the safety net for
	// concurrent imports of the same URL; a conflict here is a duplicate,
	// not a fault.
	if err := imp.Articles.CreateArticle(ctx, article); err != nil {
		if newsimport.ErrorCode(err) == newsimport.ECONFLICT {
			result := &Result{Outcome: OutcomeDuplicate}
			if record, ferr := imp.Imports.FindImportByURL(ctx, req.URL); ferr == nil {
				result.ExistingArticleID = record.ArticleID
			}
			return result, nil
		}
		return failed(StagePersist, err)
	}

	record := &newsimport.ImportRecord{
		OriginalURL:   req.URL,
		OriginalTitle: extracted.Metadata.Title,
		ArticleID:     article.ID,
		Status:        newsimport.ImportStatusImported,
	}
	if err := imp.Imports.CreateImportRecord(ctx, record); err != nil {
		imp.logger().Warn("import receipt write failed",
			"url", req.URL,
			"article_id", article.ID,
			"error", err,
		)
	}

	return &Result{
		Outcome:       OutcomeCreated,
		ArticleID:     article.ID,
		Title:         article.Title,
		Slug:          article.Slug,
		Excerpt:       article.Excerpt,
		FeaturedImage: article.FeaturedImage,
	}, nil
}

func failed(stage Stage, err error) (*Result, error) {
	msg := newsimport.ErrorMessage(err)
	if strings.TrimSpace(msg) == "" {
		msg = err.Error()
	}
	return &Result{
		Outcome: OutcomeFailed,
		Stage:   stage,
		Message: msg,
	}, err
}

func (imp *Importer) now() time.Time {
	if imp.Now != nil {
		return imp.Now()
	}
	return time.Now()
}

func (imp *Importer) logger() *slog.Logger {
	if imp.Logger != nil {
		return imp.Logger
	}
	return slog.Default()
}

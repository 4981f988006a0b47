package mock

import (
	"context"

	"github.com/rferraz/newsimport"
)

var _ newsimport.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsimport.ArticleService.
type ArticleService struct {
	CreateArticleFn     func(ctx context.Context, article *newsimport.Article) error
	FindArticleByIDFn   func(ctx context.Context, id string) (*newsimport.Article, error)
	FindArticleBySlugFn func(ctx context.Context, slug string) (*newsimport.Article, error)
	FindArticlesFn      func(ctx context.Context, filter newsimport.ArticleFilter) ([]*newsimport.Article, error)
	UpdateArticleFn     func(ctx context.Context, id string, upd newsimport.ArticleUpdate) (*newsimport.Article, error)
	DeleteArticleFn     func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsimport.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsimport.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticleBySlug(ctx context.Context, slug string) (*newsimport.Article, error) {
	return s.FindArticleBySlugFn(ctx, slug)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsimport.ArticleFilter) ([]*newsimport.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd newsimport.ArticleUpdate) (*newsimport.Article, error) {
	return s.UpdateArticleFn(ctx, id, upd)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

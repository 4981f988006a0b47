package importer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rferraz/newsimport"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// SourceResult pairs a source with the outcome of importing its URL.
type SourceResult struct {
	Source *newsimport.Source
	Result *Result
}

// Runner imports every enabled source's target URL. Imports of distinct
// URLs are independent, so sources run concurrently; calls to the
// extraction provider are rate limited to stay inside its quota.
type Runner struct {
	Sources  newsimport.SourceService
	Importer *Importer

	// Limiter bounds extraction calls across all workers. Optional.
	Limiter *rate.Limiter

	// Concurrency is the maximum number of sources imported at once.
	// Defaults to 4.
	Concurrency int

	Logger *slog.Logger
}

// Run imports all enabled sources, invoking report for each as it
// completes. A failed import does not stop the run; only context
// cancellation does. Each source's LastScrapedAt is updated best-effort
// after its import attempt.
func (r *Runner) Run(ctx context.Context, report func(SourceResult)) error {
	enabled := true
	sources, err := r.Sources.FindSources(ctx, newsimport.SourceFilter{Enabled: &enabled})
	if err != nil {
		return err
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, source := range sources {
		g.Go(func() error {
			if r.Limiter != nil {
				if err := r.Limiter.Wait(gctx); err != nil {
					return err
				}
			}

			result, _ := r.Importer.Import(gctx, Request{
				URL:        source.URL,
				CategoryID: source.CategoryID,
			})

			scrapedAt := time.Now().UTC()
			if _, err := r.Sources.UpdateSource(gctx, source.ID, newsimport.SourceUpdate{LastScrapedAt: &scrapedAt}); err != nil {
				r.logger().Warn("failed to record scrape time",
					"source", source.Name,
					"error", err,
				)
			}

			if report != nil {
				mu.Lock()
				report(SourceResult{Source: source, Result: result})
				mu.Unlock()
			}
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

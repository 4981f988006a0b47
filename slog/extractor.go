// Package slog provides logging decorators for newsimport services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rferraz/newsimport"
)

// Ensure LoggingExtractor implements newsimport.Extractor.
var _ newsimport.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with timing and outcome logging.
type LoggingExtractor struct {
	next   newsimport.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsimport.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging duration and result
// size on success and the error on failure.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (*newsimport.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(ctx, url)
	if err != nil {
		e.logger.Error("extraction failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction complete",
		"url", url,
		"duration", time.Since(begin),
		"markdown_bytes", len(result.Markdown),
	)
	return result, nil
}

package mock

import (
	"context"

	"github.com/rferraz/newsimport"
)

var _ newsimport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsimport.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*newsimport.ExtractResult, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*newsimport.ExtractResult, error) {
	return e.ExtractFn(ctx, url)
}

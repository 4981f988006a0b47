package mock

import (
	"context"

	"github.com/rferraz/newsimport"
)

var _ newsimport.ImportRecordService = (*ImportRecordService)(nil)

// ImportRecordService is a mock implementation of newsimport.ImportRecordService.
type ImportRecordService struct {
	CreateImportRecordFn func(ctx context.Context, record *newsimport.ImportRecord) error
	FindImportByURLFn    func(ctx context.Context, url string) (*newsimport.ImportRecord, error)
	FindImportRecordsFn  func(ctx context.Context, filter newsimport.ImportRecordFilter) ([]*newsimport.ImportRecord, error)
}

func (s *ImportRecordService) CreateImportRecord(ctx context.Context, record *newsimport.ImportRecord) error {
	return s.CreateImportRecordFn(ctx, record)
}

func (s *ImportRecordService) FindImportByURL(ctx context.Context, url string) (*newsimport.ImportRecord, error) {
	return s.FindImportByURLFn(ctx, url)
}

func (s *ImportRecordService) FindImportRecords(ctx context.Context, filter newsimport.ImportRecordFilter) ([]*newsimport.ImportRecord, error) {
	return s.FindImportRecordsFn(ctx, filter)
}

package mock

import (
	"context"

	"github.com/fwojciec/xwrap"
)

var _ xwrap.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of xwrap.RecordService.
type RecordService struct {
	CreateRecordFn           func(ctx context.Context, record *xwrap.Record) error
	FindRecordsFn            func(ctx context.Context, filter xwrap.RecordFilter) ([]*xwrap.Record, error)
	DeleteRecordsByWrapperFn func(ctx context.Context, wrapperID string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *xwrap.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecords(ctx context.Context, filter xwrap.RecordFilter) ([]*xwrap.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsByWrapper(ctx context.Context, wrapperID string) error {
	return s.DeleteRecordsByWrapperFn(ctx, wrapperID)
}

package mock

import (
	"context"

	"github.com/fwojciec/xwrap"
)

var _ xwrap.WrapperService = (*WrapperService)(nil)

// WrapperService is a mock implementation of xwrap.WrapperService.
type WrapperService struct {
	CreateWrapperFn   func(ctx context.Context, wrapper *xwrap.Wrapper) error
	FindWrapperByIDFn func(ctx context.Context, id string) (*xwrap.Wrapper, error)
	FindWrappersFn    func(ctx context.Context, filter xwrap.WrapperFilter) ([]*xwrap.Wrapper, error)
	UpdateWrapperFn   func(ctx context.Context, id string, upd xwrap.WrapperUpdate) (*xwrap.Wrapper, error)
	DeleteWrapperFn   func(ctx context.Context, id string) error
}

func (s *WrapperService) CreateWrapper(ctx context.Context, wrapper *xwrap.Wrapper) error {
	return s.CreateWrapperFn(ctx, wrapper)
}

func (s *WrapperService) FindWrapperByID(ctx context.Context, id string) (*xwrap.Wrapper, error) {
	return s.FindWrapperByIDFn(ctx, id)
}

func (s *WrapperService) FindWrappers(ctx context.Context, filter xwrap.WrapperFilter) ([]*xwrap.Wrapper, error) {
	return s.FindWrappersFn(ctx, filter)
}

func (s *WrapperService) UpdateWrapper(ctx context.Context, id string, upd xwrap.WrapperUpdate) (*xwrap.Wrapper, error) {
	return s.UpdateWrapperFn(ctx, id, upd)
}

func (s *WrapperService) DeleteWrapper(ctx context.Context, id string) error {
	return s.DeleteWrapperFn(ctx, id)
}

package mock

import (
	"context"

	"github.com/fwojciec/xwrap"
)

var _ xwrap.PageLoader = (*PageLoader)(nil)

// PageLoader is a mock implementation of xwrap.PageLoader.
type PageLoader struct {
	LoadFn  func(ctx context.Context, url string) (*xwrap.Page, error)
	CloseFn func() error
}

func (l *PageLoader) Load(ctx context.Context, url string) (*xwrap.Page, error) {
	return l.LoadFn(ctx, url)
}

func (l *PageLoader) Close() error {
	return l.CloseFn()
}

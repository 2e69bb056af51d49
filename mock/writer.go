package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of pagemd.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *pagemd.Page) (string, error)
}

func (w *PageWriter) WritePage(ctx context.Context, page *pagemd.Page) (string, error) {
	return w.WritePageFn(ctx, page)
}

package future

import (
	"context"

	"github.com/ib-77/resultify/pkg/rop"
)

// ResolveAll waits for all of the provided Futures to settle and returns a rop.Result for each
// future at the index corresponding to the provided slice.
// A nil future yields a failure with ErrNilFuture.
// If the provided context is canceled, the cancellation error is returned by this function.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]rop.Result[T], error) {
	res := make([]rop.Result[T], 0, len(fs))

	for _, f := range fs {
		if f == nil {
			res = append(res, rop.Fail[T](ErrNilFuture))
			continue
		}

		v, err := f.Get(ctx)
		// check before recording so a canceled Get is never reported as a failed future
		if rop.IsCancellationError(ctx.Err()) {
			return nil, ctx.Err()
		}
		res = append(res, rop.From(v, err))
	}

	return res, nil
}

package resultify

import (
	"context"

	"github.com/ib-77/resultify/pkg/rop"
	"github.com/ib-77/resultify/pkg/rop/future"
)

var ErrNilFuture = future.ErrNilFuture

// Await returns a future that settles to Ok with the value of f, or to a
// failure with its error. The returned future itself never fails.
// There is no cancellation: if f never settles, neither does the result.
func Await[R any](f *future.Future[R], opts ...Option) *future.Future[rop.Result[R]] {
	return await(newOptions(opts), f)
}

func await[R any](o *Options, f *future.Future[R]) *future.Future[rop.Result[R]] {
	if f == nil {
		return future.Resolved(rop.Fail[R](ErrNilFuture))
	}

	out := future.New[rop.Result[R]]()
	go func() {
		out.Complete(call(o, func() (R, error) {
			return f.Get(context.Background())
		}))
	}()
	return out
}

// start invokes fn synchronously; a panic there settles the returned future immediately.
func start[R any](o *Options, fn func() *future.Future[R]) *future.Future[rop.Result[R]] {
	started := call(o, func() (*future.Future[R], error) { return fn(), nil })
	if started.IsFailed() {
		return future.Resolved(rop.Fail[R](started.Err()))
	}
	return await(o, started.Value())
}

func Async[R any](fn func() *future.Future[R], opts ...Option) func() *future.Future[rop.Result[R]] {
	o := newOptions(opts)
	return func() *future.Future[rop.Result[R]] {
		return start(o, fn)
	}
}

func Async1[A, R any](fn func(A) *future.Future[R], opts ...Option) func(A) *future.Future[rop.Result[R]] {
	o := newOptions(opts)
	return func(a A) *future.Future[rop.Result[R]] {
		return start(o, func() *future.Future[R] { return fn(a) })
	}
}

func Async2[A, B, R any](fn func(A, B) *future.Future[R], opts ...Option) func(A, B) *future.Future[rop.Result[R]] {
	o := newOptions(opts)
	return func(a A, b B) *future.Future[rop.Result[R]] {
		return start(o, func() *future.Future[R] { return fn(a, b) })
	}
}

// AwaitAll waits for futures returned by Async or Await and returns their
// results in order. Only cancellation of ctx is reported as an error.
func AwaitAll[R any](ctx context.Context, fs []*future.Future[rop.Result[R]]) ([]rop.Result[R], error) {
	res := make([]rop.Result[R], 0, len(fs))

	for _, f := range fs {
		if f == nil {
			res = append(res, rop.Fail[R](ErrNilFuture))
			continue
		}

		r, err := f.Get(ctx)
		if rop.IsCancellationError(ctx.Err()) {
			return nil, ctx.Err()
		}
		if err != nil {
			r = rop.Fail[R](err)
		}
		res = append(res, r)
	}

	return res, nil
}

// Package future provides Future, a value that represents an asynchronous computation.
// A Future can be passed around and read by multiple consumers, unlike a channel whose value
// can only be received once.
package future

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/ib-77/resultify/pkg/rop"
)

// ErrNilFuture is reported in place of a nil *Future
var ErrNilFuture = errors.New("nil future")

// Func is the function signature required to create a Future via Go
type Func[T any] func() (T, error)

// Future represents an asynchronous computation.
// Once created it can be settled exactly once: the first call to Complete or Fail wins
// and all later ones are silently ignored.
//
// Get blocks until the future settles or the context is done. Get can be called by
// multiple goroutines simultaneously and they will all receive the same value.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled by calling Complete or Fail.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// Go runs do on a new goroutine and returns a Future for its outcome.
// A panic inside do fails the future instead of crashing the process.
func Go[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				f.Fail(rop.PanicAsError(p))
			}
		}()

		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Resolved returns a Future already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Rejected returns a Future already failed with err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete completes this Future with the provided value.  If the future has already been settled this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Fail completes this Future with the provided error.  If the future has already been settled this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.settle(*new(T), err)
}

func (f *Future[T]) settle(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Done returns a channel that is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// Get retrieves the value of this Future. If the future has not settled yet this call blocks
// until it does or until ctx is done, in which case the context error is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}

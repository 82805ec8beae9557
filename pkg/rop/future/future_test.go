package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/resultify/pkg/rop"
)

var (
	ErrTest = errors.New("test error")
)

func TestFuture(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Fail(ErrTest)
	}()

	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(1, v)
}

func TestGo(t *testing.T) {
	req := require.New(t)

	f := Go(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	r, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, r)

	f = Go(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 7, ErrTest
	})

	r, err = f.Get(context.Background())
	req.ErrorIs(err, ErrTest)
	req.Equal(0, r)
}

func TestGoPanic(t *testing.T) {
	req := require.New(t)

	f := Go(func() (int, error) {
		panic("kaboom")
	})

	_, err := f.Get(context.Background())
	var pe *rop.PanicError
	req.ErrorAs(err, &pe)
	req.Equal("kaboom", pe.Value)

	f = Go(func() (int, error) {
		panic(ErrTest)
	})

	_, err = f.Get(context.Background())
	req.ErrorIs(err, ErrTest)
}

func TestComplete(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			f.Complete(42)
		}()
	}

	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, v)
}

func TestFail(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Fail(ErrTest)
		}()
	}

	_, err := f.Get(context.Background())
	req.ErrorIs(err, ErrTest)
}

func TestResolvedRejected(t *testing.T) {
	req := require.New(t)

	v, err := Resolved("done").Get(context.Background())
	req.NoError(err)
	req.Equal("done", v)

	_, err = Rejected[string](ErrTest).Get(context.Background())
	req.ErrorIs(err, ErrTest)

	select {
	case <-Resolved(1).Done():
	default:
		req.Fail("resolved future must already be done")
	}
}

func TestMultipleReaders(t *testing.T) {
	req := require.New(t)

	f := New[string]()
	out := make(chan string, 3)

	for i := 0; i < 3; i++ {
		go func() {
			v, _ := f.Get(context.Background())
			out <- v
		}()
	}

	f.Complete("shared")
	for i := 0; i < 3; i++ {
		req.Equal("shared", <-out)
	}
}

func TestCancelOnGet(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.Get(ctx)
	req.ErrorIs(err, context.Canceled)
	req.True(rop.IsCancellationError(err))
}

func TestDeadlineOnGet(t *testing.T) {
	req := require.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := New[int]().Get(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)
	req.True(rop.IsCancellationError(err))
}

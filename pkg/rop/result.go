package rop

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type variant uint8

// zero value is reserved so that Result[T]{} is never a result
const (
	variantNone variant = iota
	variantOk
	variantFailed
)

// Result holds either a success value or an error, never both.
// Build one with Ok, OkOf, Fail, FailMsg, Failf or From.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	variant   variant
}

func newResult[T any](value T, err error, v variant) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		err:       err,
		variant:   v,
	}
}

// Ok wraps v as a success. Zero, nil and other falsy values are valid
// payloads. If v is itself a failed result Ok panics with ErrInvalidWrap.
// A successful v is flattened when its payload fits T, which is the case
// for interface types such as any; otherwise use OkOf.
func Ok[T any](v T) Result[T] {
	m, ok := asMarked(v)
	if !ok {
		return newResult(v, nil, variantOk)
	}
	if m.kind() == variantFailed {
		panic(errors.Wrapf(ErrInvalidWrap, "wrapping %v", m.failure()))
	}

	p := m.payload()
	if inner, fits := p.(T); fits {
		return Ok(inner)
	}
	if p == nil && reflect.TypeFor[T]().Kind() == reflect.Interface {
		var zero T
		return newResult(zero, nil, variantOk)
	}
	return newResult(v, nil, variantOk)
}

// OkOf re-wraps the value of an existing success. Passing a failed or
// zero result panics with ErrInvalidWrap.
func OkOf[T any](r Result[T]) Result[T] {
	switch r.variant {
	case variantOk:
		return Ok(r.value)
	case variantFailed:
		panic(errors.Wrapf(ErrInvalidWrap, "wrapping %v", r.err))
	default:
		panic(errors.Wrap(ErrInvalidWrap, ErrNotResult.Error()))
	}
}

// Fail wraps err as a failure. A nil error is replaced by ErrNilFailure.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	var zero T
	return newResult(zero, err, variantFailed)
}

// FailMsg promotes msg to an error and wraps it as a failure.
func FailMsg[T any](msg string) Result[T] {
	return Fail[T](errors.New(msg))
}

func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](errors.Errorf(format, args...))
}

// From converts a (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// Value returns the success payload. It panics on a failed result.
func (r Result[T]) Value() T {
	switch r.variant {
	case variantOk:
		return r.value
	case variantFailed:
		panic(errors.Wrapf(ErrWrongVariant, "value of failed result: %v", r.err))
	default:
		panic(ErrNotResult)
	}
}

func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the payload pair without panicking.
func (r Result[T]) Unwrap() (T, error) {
	if r.variant == variantNone {
		return r.value, ErrNotResult
	}
	return r.value, r.err
}

func (r Result[T]) IsOk() bool {
	return r.variant == variantOk
}

func (r Result[T]) IsFailed() bool {
	return r.variant == variantFailed
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Equal reports whether both results hold the same variant and payload.
// Id and creation time are ignored. Errors are equal when identical or
// when their messages match.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.variant != other.variant {
		return false
	}
	switch r.variant {
	case variantOk:
		return reflect.DeepEqual(r.value, other.value)
	case variantFailed:
		return r.err == other.err || r.err.Error() == other.err.Error()
	default:
		return true
	}
}

func (r Result[T]) String() string {
	switch r.variant {
	case variantOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case variantFailed:
		return fmt.Sprintf("Error(%v)", r.err)
	default:
		return "Result(<none>)"
	}
}

func (r Result[T]) kind() variant {
	return r.variant
}

func (r Result[T]) failure() error {
	return r.err
}

func (r Result[T]) payload() any {
	return r.value
}

package rop

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidWrap is raised when a failed result is wrapped as ok
	ErrInvalidWrap = errors.New("cannot wrap a failed result as ok")
	// ErrNotResult marks a zero Result that was never constructed
	ErrNotResult = errors.New("value is not a result")
	// ErrWrongVariant is raised when the success value of a failure is read
	ErrWrongVariant = errors.New("result variant mismatch")
	// ErrNilFailure is stored when Fail receives a nil error
	ErrNilFailure = errors.New("failed with nil error")
)

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// PanicAsError normalises a recovered panic value: errors are returned
// unchanged, anything else is wrapped in a *PanicError.
func PanicAsError(p any) error {
	if err, ok := p.(error); ok && !IsNil(err) {
		return err
	}
	return &PanicError{Value: p}
}

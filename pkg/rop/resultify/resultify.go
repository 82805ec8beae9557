package resultify

import "github.com/ib-77/resultify/pkg/rop"

// call runs fn and converts every outcome, panics included, into a Result.
func call[R any](o *Options, fn func() (R, error)) (res rop.Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = rop.Fail[R](o.recovered(p))
		}
	}()

	v, err := fn()
	if err != nil {
		return rop.Fail[R](err)
	}
	return rop.Ok(v)
}

func Func[R any](fn func() R, opts ...Option) func() rop.Result[R] {
	o := newOptions(opts)
	return func() rop.Result[R] {
		return call(o, func() (R, error) { return fn(), nil })
	}
}

func Func1[A, R any](fn func(A) R, opts ...Option) func(A) rop.Result[R] {
	o := newOptions(opts)
	return func(a A) rop.Result[R] {
		return call(o, func() (R, error) { return fn(a), nil })
	}
}

func Func2[A, B, R any](fn func(A, B) R, opts ...Option) func(A, B) rop.Result[R] {
	o := newOptions(opts)
	return func(a A, b B) rop.Result[R] {
		return call(o, func() (R, error) { return fn(a, b), nil })
	}
}

func Func3[A, B, C, R any](fn func(A, B, C) R, opts ...Option) func(A, B, C) rop.Result[R] {
	o := newOptions(opts)
	return func(a A, b B, c C) rop.Result[R] {
		return call(o, func() (R, error) { return fn(a, b, c), nil })
	}
}

func Variadic[A, R any](fn func(...A) R, opts ...Option) func(...A) rop.Result[R] {
	o := newOptions(opts)
	return func(args ...A) rop.Result[R] {
		return call(o, func() (R, error) { return fn(args...), nil })
	}
}

// Try adapts a function following the (value, error) convention.
// A non-nil error becomes the failure payload.
func Try[R any](fn func() (R, error), opts ...Option) func() rop.Result[R] {
	o := newOptions(opts)
	return func() rop.Result[R] {
		return call(o, fn)
	}
}

func Try1[A, R any](fn func(A) (R, error), opts ...Option) func(A) rop.Result[R] {
	o := newOptions(opts)
	return func(a A) rop.Result[R] {
		return call(o, func() (R, error) { return fn(a) })
	}
}

func Try2[A, B, R any](fn func(A, B) (R, error), opts ...Option) func(A, B) rop.Result[R] {
	o := newOptions(opts)
	return func(a A, b B) rop.Result[R] {
		return call(o, func() (R, error) { return fn(a, b) })
	}
}

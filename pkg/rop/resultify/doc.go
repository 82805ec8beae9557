// Package resultify adapts plain functions into functions that return
// rop.Result values instead of panicking or returning errors.
//
// Common usage:
// - Func/Func1/Func2/Func3/Variadic: wrap a function returning a value
// - Try/Try1/Try2: wrap a function returning (value, error)
// - Async/Async1/Async2: wrap a function returning a *future.Future
// - Await: wrap an already running *future.Future
//
// Panics are recovered and stored as the failure payload. Panic values that
// are not errors are wrapped in *rop.PanicError.
package resultify

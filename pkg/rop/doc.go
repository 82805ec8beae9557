// Package rop defines Result[T], a value that is either a success (Ok)
// or a failure (Error), together with its constructors and predicates.
//
// Highlights:
// - Ok/OkOf: construct or re-wrap a success; wrapping a failure panics
// - Fail/FailMsg/Failf: construct a failure from an error or a message
// - From: convert a Go (value, error) pair
// - IsResult/IsOk/IsFailed: inspect arbitrary values without panicking
//
// Functions that panic or return errors are adapted into Result-returning
// functions by package resultify.
package rop

package rop

// marked is implemented by every Result[T]. The methods are unexported so
// no type outside this package can pass for a result.
type marked interface {
	kind() variant
	failure() error
	payload() any
}

// Inspector is the read side shared by all Result[T] instantiations.
type Inspector interface {
	// IsOk returns true if the operation was successful
	IsOk() bool
	// IsFailed returns true if the operation failed
	IsFailed() bool
	// Err returns the error if operation failed
	Err() error
}

var _ Inspector = Result[struct{}]{}

func asMarked(thing any) (marked, bool) {
	if IsNil(thing) {
		return nil, false
	}
	m, ok := thing.(marked)
	if !ok || m.kind() == variantNone {
		return nil, false
	}
	return m, true
}

// IsResult reports whether thing is a Result built by this package.
// It accepts any input, including nil and typed-nil pointers.
func IsResult(thing any) bool {
	_, ok := asMarked(thing)
	return ok
}

func IsOk(thing any) bool {
	m, ok := asMarked(thing)
	return ok && m.kind() == variantOk
}

func IsFailed(thing any) bool {
	m, ok := asMarked(thing)
	return ok && m.kind() == variantFailed
}

package result

import (
	"fmt"
	"reflect"
)

// Result is either a success payload V or a failure payload E.
//
// A Result is created by [Success], [Failure], [SuccessFunc], [FailureFunc] or
// [From]. The zero value is empty: it holds neither payload, IsOk and IsErr
// both report false, and every unwrap panics with [ErrMovedFrom]. A Result
// becomes empty again after [Result.Take], [Result.Assign] (as the source) or
// [Result.Release].
//
// Result is a plain value and is not safe for concurrent mutation.
type Result[V, E any] struct {
	variant variant
	store   storage[V, E]
}

// Releaser is implemented by payloads that need teardown when the owning
// Result releases them.
type Releaser interface {
	Release()
}

// Success returns a Result holding v.
func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{variant: variantOk, store: storageOk[V, E](v)}
}

// Failure returns a Result holding e.
func Failure[V, E any](e E) Result[V, E] {
	return Result[V, E]{variant: variantErr, store: storageErr[V, E](e)}
}

// SuccessFunc returns a Result holding the value built by ctor.
//
// Arguments of the construction are captured by ctor, e.g.
//
//	r := result.SuccessFunc[[]int, string](func() []int { return make([]int, 1, 2) })
func SuccessFunc[V, E any](ctor func() V) Result[V, E] {
	return Success[V, E](ctor())
}

// FailureFunc returns a Result holding the error built by ctor.
func FailureFunc[V, E any](ctor func() E) Result[V, E] {
	return Failure[V, E](ctor())
}

// Release releases the live payload if it implements [Releaser] and is not
// nil, and leaves r empty. The inactive slot is never released. Release on an
// empty Result does nothing.
func (r *Result[V, E]) Release() {
	var live any
	switch r.variant {
	case variantOk:
		live = r.store.ok
	case variantErr:
		live = r.store.err
	}
	r.variant = variantEmpty
	r.store.clear()
	release(live)
}

// release calls Release on payload if it is a non-nil [Releaser].
func release(payload any) {
	if rel, ok := payload.(Releaser); ok && !isNil(rel) {
		rel.Release()
	}
}

// isNil reports whether v is a nil pointer, map, slice, func or chan.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Take moves the payload of r into a new Result and leaves r empty.
func (r *Result[V, E]) Take() Result[V, E] {
	moved := *r
	r.variant = variantEmpty
	r.store.clear()
	return moved
}

// Assign moves the payload of src into r and leaves src empty.
//
// The payload r held before is released first. Assigning r to itself does
// nothing.
func (r *Result[V, E]) Assign(src *Result[V, E]) {
	if r == src {
		return
	}
	r.Release()
	*r = src.Take()
}

// IsOk reports whether r holds a success payload.
func (r Result[V, E]) IsOk() bool {
	return r.variant == variantOk
}

// IsErr reports whether r holds a failure payload.
func (r Result[V, E]) IsErr() bool {
	return r.variant == variantErr
}

// Value returns a pointer to the success payload, or nil if r does not hold
// one. r keeps ownership of the payload.
func (r *Result[V, E]) Value() *V {
	if !r.IsOk() {
		return nil
	}
	return &r.store.ok
}

// Error returns a pointer to the failure payload, or nil if r does not hold
// one. r keeps ownership of the payload.
func (r *Result[V, E]) Error() *E {
	if !r.IsErr() {
		return nil
	}
	return &r.store.err
}

// Get returns the success payload and true, or the zero value and false.
func (r Result[V, E]) Get() (V, bool) {
	if !r.IsOk() {
		var zero V
		return zero, false
	}
	return r.store.ok, true
}

// GetErr returns the failure payload and true, or the zero value and false.
func (r Result[V, E]) GetErr() (E, bool) {
	if !r.IsErr() {
		var zero E
		return zero, false
	}
	return r.store.err, true
}

// Unwrap returns the success payload.
//
// If r holds a failure, Unwrap panics with the failure payload itself, so a
// recover (or [Catch]) sees the original E.
func (r Result[V, E]) Unwrap() V {
	switch r.variant {
	case variantOk:
		return r.store.ok
	case variantErr:
		panic(r.store.err)
	default:
		panic(ErrMovedFrom.New("unwrap of empty result"))
	}
}

// UnwrapErr returns the failure payload.
//
// If r holds a success, UnwrapErr panics with an [ErrNoError] error that does
// not carry the success payload.
func (r Result[V, E]) UnwrapErr() E {
	switch r.variant {
	case variantErr:
		return r.store.err
	case variantOk:
		panic(ErrNoError.New("surprisingly no error"))
	default:
		panic(ErrMovedFrom.New("unwrap_err of empty result"))
	}
}

// UnwrapOr returns the success payload, or fallback if r does not hold one.
func (r Result[V, E]) UnwrapOr(fallback V) V {
	if r.IsOk() {
		return r.store.ok
	}
	return fallback
}

// UnwrapOrDefault returns the success payload, or the zero value of V.
func (r Result[V, E]) UnwrapOrDefault() V {
	var zero V
	return r.UnwrapOr(zero)
}

// UnwrapOrElse returns the success payload, or fn applied to the failure
// payload. An empty Result yields the zero value without calling fn.
func (r Result[V, E]) UnwrapOrElse(fn func(E) V) V {
	switch r.variant {
	case variantOk:
		return r.store.ok
	case variantErr:
		return fn(r.store.err)
	default:
		var zero V
		return zero
	}
}

func (r Result[V, E]) String() string {
	switch r.variant {
	case variantOk:
		return fmt.Sprintf("Ok(%v)", r.store.ok)
	case variantErr:
		return fmt.Sprintf("Err(%v)", r.store.err)
	default:
		return "Empty"
	}
}

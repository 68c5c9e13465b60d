package result

import (
	"runtime"

	"github.com/joomcode/errorx"
)

// Map applies fn to the success payload of r.
//
// Map consumes r: the payload moves into the returned Result and r is left
// empty. A failure is carried over unchanged without calling fn.
func Map[V, E, U any](r *Result[V, E], fn func(V) U) Result[U, E] {
	src := r.Take()
	switch src.variant {
	case variantOk:
		return Success[U, E](fn(src.store.ok))
	case variantErr:
		return Failure[U, E](src.store.err)
	default:
		return Result[U, E]{}
	}
}

// MapErr applies fn to the failure payload of r.
//
// MapErr consumes r. A success is carried over unchanged without calling fn.
func MapErr[V, E, F any](r *Result[V, E], fn func(E) F) Result[V, F] {
	src := r.Take()
	switch src.variant {
	case variantOk:
		return Success[V, F](src.store.ok)
	case variantErr:
		return Failure[V, F](fn(src.store.err))
	default:
		return Result[V, F]{}
	}
}

// AndThen returns fn applied to the success payload of r, chaining fallible
// steps. The continuation must fail with the same E.
//
// AndThen consumes r. If r is a failure, fn is not called and the failure is
// re-wrapped into Result[U, E].
func AndThen[V, E, U any](r *Result[V, E], fn func(V) Result[U, E]) Result[U, E] {
	src := r.Take()
	switch src.variant {
	case variantOk:
		return fn(src.store.ok)
	case variantErr:
		return Failure[U, E](src.store.err)
	default:
		return Result[U, E]{}
	}
}

// OrElse returns fn applied to the failure payload of r, for recovery chains.
// The continuation must succeed with the same V.
//
// OrElse consumes r. If r is a success, fn is not called.
func OrElse[V, E, F any](r *Result[V, E], fn func(E) Result[V, F]) Result[V, F] {
	src := r.Take()
	switch src.variant {
	case variantOk:
		return Success[V, F](src.store.ok)
	case variantErr:
		return fn(src.store.err)
	default:
		return Result[V, F]{}
	}
}

// Collect returns all success payloads of rs in order, or the first failure.
// An empty Result in rs yields an empty Result.
//
// Every element of rs is consumed. On failure, the payloads that are not
// returned are released.
func Collect[V, E any](rs []Result[V, E]) Result[[]V, E] {
	vs := make([]V, 0, len(rs))
	var out *Result[[]V, E]
	for i := range rs {
		r := rs[i].Take()
		if out != nil {
			r.Release()
			continue
		}
		switch r.variant {
		case variantOk:
			vs = append(vs, r.store.ok)
		case variantErr:
			f := Failure[[]V, E](r.store.err)
			out = &f
		default:
			out = &Result[[]V, E]{}
		}
	}
	if out != nil {
		for _, v := range vs {
			release(v)
		}
		return *out
	}
	return Success[[]V, E](vs)
}

// FromPair converts a Go (value, error) pair to a Result.
func FromPair[V any](v V, err error) Result[V, error] {
	if err != nil {
		return Failure[V](err)
	}
	return Success[V, error](v)
}

// Pair converts r to a Go (value, error) pair. An empty Result yields an
// [ErrMovedFrom] error.
func Pair[V any](r Result[V, error]) (V, error) {
	switch r.variant {
	case variantOk:
		return r.store.ok, nil
	case variantErr:
		var zero V
		return zero, r.store.err
	default:
		var zero V
		return zero, ErrMovedFrom.New("pair of empty result")
	}
}

// Catch calls fn and returns its value as a success.
//
// If fn panics with a value of type E, such as the panic of [Result.Unwrap] on
// a failure, the panic is recovered and returned as a failure. Any other panic
// is re-raised, and so are runtime errors and the contract violations of this
// package ([ErrNoError], [ErrMovedFrom]) even when E is error.
func Catch[V, E any](fn func() V) (res Result[V, E]) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if isContractViolation(p) {
			panic(p)
		}
		e, ok := p.(E)
		if !ok {
			panic(p)
		}
		res = Failure[V, E](e)
	}()
	return Success[V, E](fn())
}

func isContractViolation(p any) bool {
	if _, ok := p.(runtime.Error); ok {
		return true
	}
	err, ok := p.(error)
	return ok && (errorx.IsOfType(err, ErrNoError) || errorx.IsOfType(err, ErrMovedFrom))
}

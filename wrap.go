package result

// Ok carries a success payload until it is converted with [From].
type Ok[V any] struct {
	Inner V
}

// Err carries a failure payload until it is converted with [From].
type Err[E any] struct {
	Inner E
}

// OkOf returns an Ok carrying v.
func OkOf[V any](v V) Ok[V] {
	return Ok[V]{Inner: v}
}

// ErrOf returns an Err carrying e.
func ErrOf[E any](e E) Err[E] {
	return Err[E]{Inner: e}
}

// From converts an [Ok] or an [Err] to a Result whose types are already known
// at the call site:
//
//	func parse(s string) result.Result[int, string] {
//		if s == "" {
//			return result.From[int, string](result.ErrOf("empty"))
//		}
//		return result.From[int, string](result.OkOf(len(s)))
//	}
func From[V, E any, W Ok[V] | Err[E]](w W) Result[V, E] {
	switch w := any(w).(type) {
	case Ok[V]:
		return Success[V, E](w.Inner)
	case Err[E]:
		return Failure[V, E](w.Inner)
	}
	// unreachable: W is constrained to Ok[V] | Err[E]
	return Result[V, E]{}
}

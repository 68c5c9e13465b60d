package result

import (
	"reflect"
	"strings"
)

// resultType is implemented by instantiations of Result, by pointers to them
// and by structs embedding them; isResultType keeps only the first.
type resultType interface {
	isResult()
}

func (Result[V, E]) isResult() {}

var (
	resultTypeOf = reflect.TypeOf((*resultType)(nil)).Elem()
	resultPkg    = reflect.TypeOf(Result[int, int]{}).PkgPath()
)

func isResultType(t reflect.Type) bool {
	return t != nil &&
		t.Kind() == reflect.Struct &&
		t.PkgPath() == resultPkg &&
		strings.HasPrefix(t.Name(), "Result[") &&
		t.Implements(resultTypeOf)
}

// IsResult reports whether T is an instantiation of Result.
//
//	result.IsResult[result.Result[int, string]]() // true
//	result.IsResult[*result.Result[int, string]]() // false
//	result.IsResult[int]()                         // false
func IsResult[T any]() bool {
	return isResultType(reflect.TypeOf((*T)(nil)).Elem())
}

// IsResultValue reports whether v holds a Result.
func IsResultValue(v any) bool {
	return isResultType(reflect.TypeOf(v))
}

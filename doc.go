// result is package of Result, the outcome of a fallible computation: either
// a success payload or a failure payload, never both.
//
// Example
//
//	// Result of int (or string error)
//	parse := func(s string) result.Result[int, string] {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return result.Failure[int](err.Error())
//		}
//		return result.Success[int, string](n)
//	}
//
//	// chain fallible steps without checking each one;
//	// AndThen consumes the Result it is given
//	r := parse("42")
//	r = result.AndThen(&r, func(n int) result.Result[int, string] {
//		if n < 0 {
//			return result.Failure[int]("negative")
//		}
//		return result.Success[int, string](n * 2)
//	})
//	fmt.Println(r.UnwrapOr(0)) // 84
//
//	// Unwrap panics with the failure payload itself
//	// and Catch recovers it back into a Result.
//	r = result.Catch[int, string](func() int {
//		return parse("x").Unwrap()
//	})
//	fmt.Println(r.IsErr()) // true
//
// Runners can be evaluated in parallel, each yielding a Result:
//
//	p := result.New[int](ctx, result.Procs(4), result.RunnerTimeout(3*time.Second))
//	p.Add(result.NewRunner(func(ctx context.Context) (int, error) {
//		return 123, nil
//	}))
//	for _, res := range p.Wait() {
//		fmt.Println(res)
//	}
package result

package result

import "context"

// Runner is a fallible computation evaluated by [Parallel].
type Runner[V any] interface {
	Run(context.Context) Result[V, error]
}

// RunnerFunc adapts a function returning a Result to [Runner].
type RunnerFunc[V any] func(context.Context) Result[V, error]

// Run calls f(ctx).
func (f RunnerFunc[V]) Run(ctx context.Context) Result[V, error] {
	return f(ctx)
}

// NewRunner converts func(context.Context) (V, error) to Runner.
func NewRunner[V any](fn func(context.Context) (V, error)) Runner[V] {
	return RunnerFunc[V](func(ctx context.Context) Result[V, error] {
		v, err := fn(ctx)
		return FromPair(v, err)
	})
}

package result

import (
	"context"
	"fmt"

	"github.com/joomcode/errorx"
)

var (
	// Errors is the namespace of all errors raised by this package.
	Errors = errorx.NewNamespace("result")

	// ErrNoError is the panic type of UnwrapErr on a success.
	// It does not carry the success payload.
	ErrNoError = Errors.NewType("no_error")

	// ErrMovedFrom is the panic type of unwrapping a Result whose payload was
	// moved out, released, or never constructed.
	ErrMovedFrom = Errors.NewType("moved_from")

	// ErrNilRunner is the error of a nil Runner added to Parallel.
	ErrNilRunner = Errors.NewType("nil_runner")
)

// ErrContextDone is error with [context.Done].
type ErrContextDone struct {
	// Err is the return value of context.Cause(ctx)
	Err error
}

func newErrContextDone(ctx context.Context) error {
	return &ErrContextDone{Err: context.Cause(ctx)}
}

func (e *ErrContextDone) Error() string {
	return fmt.Sprintf("context done: %v", e.Err)
}

// Unwrap returns e.Err that is context.Cause(ctx).
func (e *ErrContextDone) Unwrap() error {
	return e.Err
}

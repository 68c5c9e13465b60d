package result

import (
	"runtime"
	"time"
)

// option configures how runners are evaluated.
type option struct {
	procs   int
	timeout time.Duration
}

// Option tunes the evaluation done by [New] and [CollectParallel].
type Option func(*option)

// Procs bounds how many fallible computations are in flight together.
// Values below 1 fall back to [ProcsDefault].
func Procs(n int) Option {
	return func(o *option) {
		o.procs = n
	}
}

// ProcsNumCPU bounds the computations in flight by [runtime.NumCPU].
func ProcsNumCPU() Option {
	return Procs(runtime.NumCPU())
}

// RunnerTimeout bounds the context each computation receives; once it
// expires, the computation is expected to return a failure.
//
// Zero or a negative duration leaves the context unbounded.
func RunnerTimeout(d time.Duration) Option {
	return func(o *option) {
		o.timeout = d
	}
}

func newOption(opts []Option) *option {
	o := &option{procs: ProcsDefault}
	for _, opt := range opts {
		opt(o)
	}
	if o.procs < 1 {
		o.procs = ProcsDefault
	}
	return o
}

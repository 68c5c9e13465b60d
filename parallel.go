package result

import (
	"context"
	"sync"

	logging "github.com/ipfs/go-log/v2"
	"github.com/joomcode/errorx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var log = logging.Logger("result")

// Parallel evaluates [Runner]s with a bounded number at once and delivers one
// Result per Runner.
type Parallel[V any] interface {
	// Add adds Runner(s)
	Add(rs ...Runner[V]) error
	// Result returns channel for receiving Result
	Result() <-chan Result[V, error]
	// Done returns channel that will be closed when all processing is done.
	Done() <-chan struct{}
	// Wait blocks until all processing to done, and returns all results.
	Wait() []Result[V, error]
}

// parallel bounds how many runners are evaluated at once.
//
// A parallel is single use. Its loop goroutine lives until ctx ends, so a
// context that never ends keeps one goroutine per parallel; pass a context
// that is cancelled once the results are collected.
type parallel[V any] struct {
	ctx    context.Context
	sem    *semaphore.Weighted
	wg     sync.WaitGroup
	addch  chan Runner[V]
	resch  chan Result[V, error]
	donech chan struct{}
	once   sync.Once
	opt    *option
}

// ProcsDefault is the bound used when [Procs] is unset or below 1.
var ProcsDefault = 1

// New returns Parallel evaluating runners under ctx.
//
// Cancel ctx after Wait (or Done) returns: the evaluation loop exits only
// when ctx ends.
func New[V any](ctx context.Context, opts ...Option) Parallel[V] {
	o := newOption(opts)

	p := &parallel[V]{
		ctx:    ctx,
		sem:    semaphore.NewWeighted(int64(o.procs)),
		addch:  make(chan Runner[V]),
		resch:  make(chan Result[V, error]),
		donech: make(chan struct{}),
		opt:    o,
	}
	log.Debugf("parallel started: procs=%d timeout=%v", o.procs, o.timeout)
	go p.loop()
	return p
}

func (p *parallel[V]) loop() {
	for {
		var r Runner[V]
		select {
		case <-p.ctx.Done():
			p.alldone()
			return
		case r = <-p.addch:
		}

		go func() {
			defer p.wg.Done()
			p.resch <- p.run(r)
		}()
	}
}

func (p *parallel[V]) run(r Runner[V]) Result[V, error] {
	if r == nil {
		log.Warn("nil runner added")
		return Failure[V, error](ErrNilRunner.New("runner is nil"))
	}

	if err := p.sem.Acquire(p.ctx, 1); err != nil {
		return Failure[V](newErrContextDone(p.ctx))
	}
	defer p.sem.Release(1)
	// Acquire may win the race against a context that ended meanwhile
	if p.ctx.Err() != nil {
		return Failure[V](newErrContextDone(p.ctx))
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if p.opt.timeout > 0 {
		ctx, cancel = context.WithTimeout(p.ctx, p.opt.timeout)
	} else {
		ctx, cancel = context.WithCancel(p.ctx)
	}
	defer cancel()

	res := r.Run(ctx)
	if res.IsErr() {
		log.Debugf("runner failed: %v", res)
	}
	return res
}

// alldone answers every Runner still being added after the context ended.
func (p *parallel[V]) alldone() {
	log.Debugf("parallel context done: %v", context.Cause(p.ctx))
	for {
		select {
		case <-p.addch:
			p.resch <- Failure[V](newErrContextDone(p.ctx))
			p.wg.Done()
		case <-p.Done():
			return
		}
	}
}

// Add adds Runner(s)
func (p *parallel[V]) Add(rs ...Runner[V]) error {
	select {
	case <-p.ctx.Done():
		return newErrContextDone(p.ctx)
	default:
	}

	p.wg.Add(len(rs))
	go func() {
		for _, r := range rs {
			p.addch <- r
		}
	}()

	return nil
}

// Result returns channel for receiving Result.
func (p *parallel[V]) Result() <-chan Result[V, error] {
	return p.resch
}

// Done returns channel that will be closed when all processing is done.
func (p *parallel[V]) Done() <-chan struct{} {
	p.once.Do(func() {
		go func() {
			p.wg.Wait()
			close(p.donech)
		}()
	})
	return p.donech
}

// Wait blocks until all processing to done, and returns all results.
func (p *parallel[V]) Wait() (ret []Result[V, error]) {
	for {
		select {
		case res := <-p.Result():
			ret = append(ret, res)
		case <-p.Done():
			return ret
		}
	}
}

// CollectParallel evaluates fns with at most [Procs] at once and returns their
// values in the order of fns, or the first error. The first error cancels the
// context passed to the remaining functions.
func CollectParallel[V any](ctx context.Context, fns []func(context.Context) (V, error), opts ...Option) Result[[]V, error] {
	o := newOption(opts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.procs)

	vs := make([]V, len(fns))
	for i, fn := range fns {
		i, fn := i, fn
		g.Go(func() error {
			rctx, cancel := gctx, context.CancelFunc(func() {})
			if o.timeout > 0 {
				rctx, cancel = context.WithTimeout(gctx, o.timeout)
			}
			defer cancel()

			v, err := fn(rctx)
			if err != nil {
				return errorx.EnsureStackTrace(err)
			}
			vs[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Debugf("collect failed: %v", err)
		return Failure[[]V](err)
	}
	return Success[[]V, error](vs)
}

package do

import (
	"context"

	"github.com/ib-77/res/pkg/res"
)

// Source produces the steps of a run. It executes in its own goroutine and
// yields one Result at a time through the Yielder, receiving back the
// unwrapped success value; its return value becomes the payload of the run's
// final success.
type Source[T, E, R any] func(y *Yielder[T, E]) R

// SourceCtx is a Source whose steps may block on context-aware work. The
// context passed to the run is handed through unchanged.
type SourceCtx[T, E, R any] func(ctx context.Context, y *Yielder[T, E]) R

// Yielder is the suspend/resume protocol between a step source and the
// driver. It is valid only for the duration of a single run and must not be
// shared across goroutines inside the source.
type Yielder[T, E any] struct {
	yield  chan res.Result[T, E]
	resume chan T
	quit   chan struct{}
}

// stopSignal unwinds a source goroutine that will never be resumed.
type stopSignal struct{}

// Step hands r to the driver and suspends the source until the driver sends
// back the unwrapped success value. If r is a failure, or the run has been
// abandoned, the source is never resumed: Step unwinds the goroutine and no
// later step executes. Deferred cleanup in the source still runs during the
// unwind, but must not call Step again.
func (y *Yielder[T, E]) Step(r res.Result[T, E]) T {
	select {
	case y.yield <- r:
	case <-y.quit:
		panic(stopSignal{})
	}

	select {
	case v := <-y.resume:
		return v
	case <-y.quit:
		panic(stopSignal{})
	}
}

type outcome[R any] struct {
	final    R
	panicked any
	aborted  bool
}

func newYielder[T, E any]() *Yielder[T, E] {
	return &Yielder[T, E]{
		yield:  make(chan res.Result[T, E]),
		resume: make(chan T),
		quit:   make(chan struct{}),
	}
}

func drive[T, E, R any](y *Yielder[T, E], body func() R) <-chan outcome[R] {
	done := make(chan outcome[R], 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				if _, stopped := p.(stopSignal); stopped {
					done <- outcome[R]{aborted: true}
					return
				}
				done <- outcome[R]{panicked: p}
			}
		}()
		done <- outcome[R]{final: body()}
	}()

	return done
}

// Run executes a fresh sequence of steps: each yielded success is unwrapped
// and sent back into the source, the first yielded failure terminates the
// source and becomes the value of the whole run, and a source that returns
// normally produces a success wrapping its return value. Steps run strictly
// one at a time, in yield order.
func Run[T, E, R any](source Source[T, E, R]) res.Result[R, E] {
	y := newYielder[T, E]()
	done := drive(y, func() R { return source(y) })

	for {
		select {
		case r := <-y.yield:
			if r.IsFailure() {
				close(y.quit)
				d := <-done
				if d.panicked != nil {
					panic(d.panicked)
				}
				return res.FailureFrom[R](r)
			}
			y.resume <- r.Value()
		case d := <-done:
			if d.panicked != nil {
				panic(d.panicked)
			}
			return res.Success[R, E](d.final)
		}
	}
}

// RunCtx executes a sequence whose steps may block on context-aware work,
// with the same unwrap/short-circuit semantics as Run. When ctx is done the
// driver stops immediately and the run evaluates to a failure built by
// onCancel from ctx.Err(); the source goroutine unwinds the next time it
// touches the Yielder. Steps performing their own I/O must honor ctx
// themselves, the driver cannot interrupt them.
func RunCtx[T, E, R any](ctx context.Context, source SourceCtx[T, E, R],
	onCancel func(cause error) E) res.Result[R, E] {

	y := newYielder[T, E]()
	done := drive(y, func() R { return source(ctx, y) })

	for {
		select {
		case <-ctx.Done():
			close(y.quit)
			return res.Failure[R, E](onCancel(ctx.Err()))
		case r := <-y.yield:
			if r.IsFailure() {
				close(y.quit)
				d := <-done
				if d.panicked != nil {
					panic(d.panicked)
				}
				return res.FailureFrom[R](r)
			}
			select {
			case y.resume <- r.Value():
			case <-ctx.Done():
				close(y.quit)
				return res.Failure[R, E](onCancel(ctx.Err()))
			}
		case d := <-done:
			if d.panicked != nil {
				panic(d.panicked)
			}
			return res.Success[R, E](d.final)
		}
	}
}

// Wrap turns a source into a reusable function; every invocation starts a
// fresh, independent run.
func Wrap[T, E, R any](source Source[T, E, R]) func() res.Result[R, E] {
	return func() res.Result[R, E] {
		return Run(source)
	}
}

// WrapCtx is Wrap for context-aware sources.
func WrapCtx[T, E, R any](source SourceCtx[T, E, R],
	onCancel func(cause error) E) func(ctx context.Context) res.Result[R, E] {

	return func(ctx context.Context) res.Result[R, E] {
		return RunCtx(ctx, source, onCancel)
	}
}

package stream

import (
	"context"
	"sync"

	"github.com/ib-77/res/pkg/res"
)

// Handlers observe the lifecycle of a result-producing source channel.
type Handlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnNext      func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

// ToChan emits the given values on a channel, stopping early when ctx is
// done. The channel is closed once all values are sent.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults lifts the given values into successes on a channel, invoking
// the handlers as values are emitted, skipped on startup, or cut off by
// cancellation.
func ToChanResults[T, E any](ctx context.Context, handlers Handlers[T], values ...T) <-chan res.Result[T, E] {
	in := make(chan res.Result[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- res.Success[T, E](v):
				if handlers.OnNext != nil {
					handlers.OnNext(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// Collect drains the channel into a slice, stopping when the channel closes
// or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	collected := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				collected = append(collected, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return collected
}

// First returns the first value received from the channel, or defaultV when
// the channel closes empty or ctx is done first.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	first := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			first = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return first
}

// Pump applies a context-aware step to every Result received on in, using a
// fixed number of worker goroutines, and emits the outcomes on the returned
// channel. Workers stop on ctx cancellation or when in closes; the output
// channel is closed once all workers finish. When workers is not positive the
// count is taken from the context option, defaulting to one.
func Pump[T, E, U any](ctx context.Context, in <-chan res.Result[T, E],
	step func(ctx context.Context, input res.Result[T, E]) res.Result[U, E],
	workers int) <-chan res.Result[U, E] {

	if workers <= 0 {
		workers = Workers(ctx, 1)
	}

	out := make(chan res.Result[U, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go pump(ctx, in, out, step, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func pump[T, E, U any](ctx context.Context, in <-chan res.Result[T, E], out chan<- res.Result[U, E],
	step func(ctx context.Context, input res.Result[T, E]) res.Result[U, E], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			select {
			case out <- step(ctx, r):
			case <-ctx.Done():
				return
			}
		}
	}
}

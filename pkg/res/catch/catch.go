package catch

import (
	"context"
	"errors"

	"github.com/ib-77/res/pkg/res"
)

// Filter decides whether a recovered panic value is converted into a failure.
// It returns the error to carry and true to keep the panic, or false to let
// it propagate uncaught.
type Filter func(recovered any) (error, bool)

// As keeps only panics carrying an error that matches E under errors.As. Any
// other panic value propagates uncaught.
func As[E error]() Filter {
	return func(recovered any) (error, bool) {
		err, ok := recovered.(error)
		if !ok {
			return nil, false
		}
		var target E
		if errors.As(err, &target) {
			return target, true
		}
		return nil, false
	}
}

// AnyError keeps every panic carrying an error value.
func AnyError() Filter {
	return func(recovered any) (error, bool) {
		return res.AsError(recovered)
	}
}

// Lift runs a conventional (T, error) function and represents its outcome as
// a Result: nil error becomes a success, anything else a failure.
func Lift[T any](fn func() (T, error)) res.Result[T, error] {
	v, err := fn()
	if err != nil {
		return res.Failure[T, error](err)
	}
	return res.Success[T, error](v)
}

// LiftCtx is Lift for context-aware functions.
func LiftCtx[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) res.Result[T, error] {
	v, err := fn(ctx)
	if err != nil {
		return res.Failure[T, error](err)
	}
	return res.Success[T, error](v)
}

// Do lifts an already-made call, e.g. catch.Do(strconv.Atoi("7")).
func Do[T any](v T, err error) res.Result[T, error] {
	if err != nil {
		return res.Failure[T, error](err)
	}
	return res.Success[T, error](v)
}

// Catch runs fn and converts a panic accepted by keep into a failure. A panic
// the filter rejects propagates to the caller unchanged; the closed set of
// convertible panics is entirely the filter's.
func Catch[T any](fn func() T, keep Filter) (out res.Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := keep(p); ok {
				out = res.Failure[T, error](err)
				return
			}
			panic(p)
		}
	}()

	return res.Success[T, error](fn())
}

// CatchCtx is Catch for context-aware functions.
func CatchCtx[T any](ctx context.Context, fn func(ctx context.Context) T, keep Filter) (out res.Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := keep(p); ok {
				out = res.Failure[T, error](err)
				return
			}
			panic(p)
		}
	}()

	return res.Success[T, error](fn(ctx))
}

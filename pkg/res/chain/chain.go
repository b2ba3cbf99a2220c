package chain

import (
	"context"

	"github.com/ib-77/res/pkg/res"
)

// Chain wraps a res.Result with context to enable fluent composition.
type Chain[T, E any] struct {
	ctx context.Context
	r   res.Result[T, E]
}

// Start creates a new chain from a res.Result
func Start[T, E any](ctx context.Context, r res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, r: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, res.Success[T, E](v))
}

// Result returns the underlying res.Result
func (c Chain[T, E]) Result() res.Result[T, E] {
	return c.r
}

// Then composes functions that already return a res.Result of the same shape.
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, v T) res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, r: res.AndThenCtx(c.ctx, c.r, onSuccess)}
}

// Map transforms the successful value without changing its type.
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, v T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, r: res.MapCtx(c.ctx, c.r, onSuccess)}
}

// Recover hands a failure to onFailure, which may produce a fresh success or
// another failure; successes pass through untouched.
func (c Chain[T, E]) Recover(onFailure func(ctx context.Context, err E) res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, r: res.OrElseCtx(c.ctx, c.r, onFailure)}
}

// Ensure performs a side effect on success without changing the result.
func (c Chain[T, E]) Ensure(onSuccess func(ctx context.Context, v T)) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, r: c.r.Inspect(func(v T) {
		onSuccess(c.ctx, v)
	})}
}

// EnsureFailure performs a side effect on failure without changing the result.
func (c Chain[T, E]) EnsureFailure(onFailure func(ctx context.Context, err E)) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, r: c.r.InspectFailure(func(err E) {
		onFailure(c.ctx, err)
	})}
}

// To chains a function that switches the chain to a new value type.
func To[T, E, U any](c Chain[T, E], onSuccess func(ctx context.Context, v T) res.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, r: res.AndThenCtx(c.ctx, c.r, onSuccess)}
}

// MapTo chains a pure transformation to a new value type.
func MapTo[T, E, U any](c Chain[T, E], onSuccess func(ctx context.Context, v T) U) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, r: res.MapCtx(c.ctx, c.r, onSuccess)}
}

// ToTry chains a function that returns (U, error), converting a non-nil
// error into a failure. Defined for error-payload chains only.
func ToTry[T, U any](c Chain[T, error], try func(ctx context.Context, v T) (U, error)) Chain[U, error] {
	return Chain[U, error]{ctx: c.ctx, r: res.AndThenCtx(c.ctx, c.r,
		func(ctx context.Context, v T) res.Result[U, error] {
			u, err := try(ctx, v)
			if err != nil {
				return res.Failure[U, error](err)
			}
			return res.Success[U, error](u)
		})}
}

// Finally collapses the chain into a final value via the variant handlers.
func Finally[T, E, U any](c Chain[T, E],
	onSuccess func(ctx context.Context, v T) U,
	onFailure func(ctx context.Context, err E) U) U {

	return res.Match(c.r,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err E) U { return onFailure(c.ctx, err) })
}

package res

import "context"

// Map transforms the success payload and leaves a failure untouched. The
// transform must not panic in normal use; a panicking transform propagates to
// the caller, it is never converted into a failure.
func Map[T, E, U any](input Result[T, E], onSuccess func(v T) U) Result[U, E] {
	if input.isSuccess {
		return Success[U, E](onSuccess(input.value))
	}
	return FailureFrom[U](input)
}

// MapFailure transforms the error payload and leaves a success untouched.
func MapFailure[T, E, F any](input Result[T, E], onFailure func(err E) F) Result[T, F] {
	if input.isSuccess {
		return successFrom[F](input)
	}
	return Failure[T, F](onFailure(input.err))
}

// Alt transforms the error channel without flattening. It is the
// error-channel counterpart of Map and behaves exactly like MapFailure; both
// names are kept as public entry points.
func Alt[T, E, F any](input Result[T, E], onFailure func(err E) F) Result[T, F] {
	return MapFailure(input, onFailure)
}

// MapOr returns the transformed success payload, or def for a failure. def is
// always evaluated by the caller; use MapOrElse when the default is costly.
func MapOr[T, E, U any](input Result[T, E], def U, onSuccess func(v T) U) U {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return def
}

// MapOrElse returns the transformed success payload, or the lazily computed
// default for a failure.
func MapOrElse[T, E, U any](input Result[T, E], onFailure func() U, onSuccess func(v T) U) U {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return onFailure()
}

// AndThen binds the success payload to a function that itself returns a
// Result, flattening one level. A failure short-circuits: onSuccess is not
// invoked and the error is carried through. This is the core composition
// primitive; every chain degrades to repeated AndThen.
func AndThen[T, E, U any](input Result[T, E], onSuccess func(v T) Result[U, E]) Result[U, E] {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return FailureFrom[U](input)
}

// OrElse is the recovery dual of AndThen: a failure is handed to onFailure,
// which may produce a fresh success or another failure; a success is carried
// through untouched.
func OrElse[T, E, F any](input Result[T, E], onFailure func(err E) Result[T, F]) Result[T, F] {
	if input.isSuccess {
		return successFrom[F](input)
	}
	return onFailure(input.err)
}

// Swap inverts the variant: a success payload becomes the error payload and
// vice versa. Swapping twice restores the original.
func Swap[T, E any](input Result[T, E]) Result[E, T] {
	if input.isSuccess {
		return Result[E, T]{
			err:       input.value,
			isSuccess: false,
			createdAt: input.createdAt,
			id:        input.id,
			trace:     captureTrace(input.value),
		}
	}
	return Result[E, T]{
		value:     input.err,
		isSuccess: true,
		createdAt: input.createdAt,
		id:        input.id,
	}
}

// Match invokes exactly one handler based on the variant and returns its
// result. A nil handler for the matching variant yields the zero value of R;
// callers must supply at least the handler for the variant they expect.
func Match[T, E, R any](input Result[T, E], onSuccess func(v T) R, onFailure func(err E) R) R {
	if input.isSuccess {
		if onSuccess == nil {
			var zero R
			return zero
		}
		return onSuccess(input.value)
	}
	if onFailure == nil {
		var zero R
		return zero
	}
	return onFailure(input.err)
}

// Equal reports structural equality: same variant and equal payload. Instance
// metadata (id, creation time, captured trace) is ignored.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return a.value == b.value
	}
	return a.err == b.err
}

// MapCtx is Map for context-aware transforms. The only suspension point is
// inside onSuccess itself; the combinator adds none of its own.
func MapCtx[T, E, U any](ctx context.Context, input Result[T, E],
	onSuccess func(ctx context.Context, v T) U) Result[U, E] {

	if input.isSuccess {
		return Success[U, E](onSuccess(ctx, input.value))
	}
	return FailureFrom[U](input)
}

// AndThenCtx is AndThen for context-aware step functions, with identical
// short-circuit semantics.
func AndThenCtx[T, E, U any](ctx context.Context, input Result[T, E],
	onSuccess func(ctx context.Context, v T) Result[U, E]) Result[U, E] {

	if input.isSuccess {
		return onSuccess(ctx, input.value)
	}
	return FailureFrom[U](input)
}

// OrElseCtx is OrElse for context-aware recovery functions.
func OrElseCtx[T, E, F any](ctx context.Context, input Result[T, E],
	onFailure func(ctx context.Context, err E) Result[T, F]) Result[T, F] {

	if input.isSuccess {
		return successFrom[F](input)
	}
	return onFailure(ctx, input.err)
}

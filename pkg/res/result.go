package res

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a closed two-variant container: a success carrying a value of
// type T, or a failure carrying an error payload of type E. The variant is
// fixed at construction; combinators always build a new Result instead of
// mutating the receiver.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
	trace     *stackTrace
}

// Success wraps a value into the success variant.
func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps an error payload into the failure variant. If the payload is
// an error value, the call stack is captured for later inspection via Trace.
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
		trace:     captureTrace(err),
	}
}

// FailureFrom re-wraps a failure under a new success type. The error payload,
// id, creation time and captured trace are carried over; the success payload,
// if any, is not.
func FailureFrom[Out, T, E any](from Result[T, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
		trace:     from.trace,
	}
}

func successFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsSuccess returns true for the success variant.
func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true for the failure variant.
func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success payload, or the zero value for a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error payload, or the zero value for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// Id returns the instance identifier assigned at construction.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// AnyValue returns the success payload untyped; part of the AnyResult view.
func (r Result[T, E]) AnyValue() any {
	return r.value
}

// AnyErr returns the error payload untyped; part of the AnyResult view.
func (r Result[T, E]) AnyErr() any {
	return r.err
}

// Trace returns the formatted stack frames captured when this failure was
// constructed with an error payload, or nil otherwise. Frames are formatted
// once on first access and cached.
func (r Result[T, E]) Trace() []string {
	if r.trace == nil {
		return nil
	}
	return r.trace.formatted()
}

// Unwrap returns the success payload. On a failure it panics with an
// *UnwrapError carrying this Result.
func (r Result[T, E]) Unwrap() T {
	if r.isSuccess {
		return r.value
	}
	panic(newUnwrapError(r, fmt.Sprintf("called unwrap on a Failure value: %v", r.err)))
}

// UnwrapFailure returns the error payload. On a success it panics with an
// *UnwrapError carrying this Result.
func (r Result[T, E]) UnwrapFailure() E {
	if r.isSuccess {
		panic(newUnwrapError(r, fmt.Sprintf("called unwrap_failure on a Success value: %v", r.value)))
	}
	return r.err
}

// UnwrapOr returns the success payload, or def for a failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success payload, or onFailure applied to the error
// payload. onFailure is never invoked for a success; if it panics, the panic
// propagates to the caller unchanged.
func (r Result[T, E]) UnwrapOrElse(onFailure func(err E) T) T {
	if r.isSuccess {
		return r.value
	}
	return onFailure(r.err)
}

// UnwrapOrRaise returns the success payload; on a failure it panics with the
// error built by makeErr from the error payload.
func (r Result[T, E]) UnwrapOrRaise(makeErr func(err E) error) T {
	if r.isSuccess {
		return r.value
	}
	panic(makeErr(r.err))
}

// Expect returns the success payload. On a failure it panics with an
// *UnwrapError whose message is prefixed with msg.
func (r Result[T, E]) Expect(msg string) T {
	if r.isSuccess {
		return r.value
	}
	panic(newUnwrapError(r, fmt.Sprintf("%s: %v", msg, r.err)))
}

// ExpectFailure returns the error payload. On a success it panics with an
// *UnwrapError whose message is prefixed with msg.
func (r Result[T, E]) ExpectFailure(msg string) E {
	if r.isSuccess {
		panic(newUnwrapError(r, fmt.Sprintf("%s: %v", msg, r.value)))
	}
	return r.err
}

// Inspect calls onSuccess with the payload of a success, for its side effect
// only, and returns the receiver unchanged either way.
func (r Result[T, E]) Inspect(onSuccess func(v T)) Result[T, E] {
	if r.isSuccess {
		onSuccess(r.value)
	}
	return r
}

// InspectFailure calls onFailure with the payload of a failure, for its side
// effect only, and returns the receiver unchanged either way.
func (r Result[T, E]) InspectFailure(onFailure func(err E)) Result[T, E] {
	if !r.isSuccess {
		onFailure(r.err)
	}
	return r
}

// String shows the variant tag and payload, e.g. Success(42) or Failure(oops).
func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

package res

// IsSuccess reports whether r is the success variant. Free-function form of
// the method, usable where a predicate value is needed.
func IsSuccess[T, E any](r Result[T, E]) bool {
	return r.IsSuccess()
}

// IsFailure reports whether r is the failure variant.
func IsFailure[T, E any](r Result[T, E]) bool {
	return r.IsFailure()
}

package res

// AnyResult is a variant-erased, read-only view of a Result of any payload
// types. It is the form in which an UnwrapError carries its back-reference,
// since the concrete type parameters of the offending Result are unknown at
// the point the signal is inspected.
type AnyResult interface {
	// IsSuccess returns true for the success variant
	IsSuccess() bool
	// IsFailure returns true for the failure variant
	IsFailure() bool
	// AnyValue returns the untyped success payload, or the zero value
	AnyValue() any
	// AnyErr returns the untyped error payload, or the zero value
	AnyErr() any
}

// WithTrace is implemented by failures whose error payload allowed a stack
// capture at construction time.
type WithTrace interface {
	// Trace returns formatted stack frames, or nil if none were captured
	Trace() []string
}

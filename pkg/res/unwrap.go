package res

// UnwrapError signals a contract violation: a variant-specific extraction
// call made on the wrong variant. It is always raised via panic, never
// returned, and carries a back-reference to the offending Result for
// diagnostics. The reference is associative only; the Result's lifetime stays
// with its original owner.
type UnwrapError struct {
	msg    string
	result AnyResult
}

func newUnwrapError(r AnyResult, msg string) *UnwrapError {
	return &UnwrapError{msg: msg, result: r}
}

// Error returns the message describing which contract was violated.
func (e *UnwrapError) Error() string {
	return e.msg
}

// Result returns the original Result the violating call was made on.
func (e *UnwrapError) Result() AnyResult {
	return e.result
}

// Trace returns the stack capture of the referenced Result, when it has one.
func (e *UnwrapError) Trace() []string {
	if wt, ok := e.result.(WithTrace); ok {
		return wt.Trace()
	}
	return nil
}

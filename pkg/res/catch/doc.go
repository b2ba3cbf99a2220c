// Package catch adapts functions written against other error conventions
// into Result producers. It sits at the library boundary and only consumes
// the public res contract.
//
// Key operations:
// - Lift/LiftCtx/Do: wrap the (T, error) convention
// - Catch/CatchCtx: run a function, converting filtered panics into failures
// - As/AnyError: panic filters; anything a filter rejects propagates uncaught
package catch

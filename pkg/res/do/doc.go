// Package do drives a lazy sequence of Result-producing steps as straight-
// line code: each success is unwrapped and fed back into the step source, the
// first failure short-circuits the whole run, and a source that returns
// normally yields a final success. The source runs in its own goroutine and
// communicates over paired yield/resume channels, so a step only executes
// when the driver asks for it and never after an earlier step has failed.
//
// Key operations:
// - Run: drive an already-written source once
// - Wrap: package a source as a function; each call is a fresh run
// - RunCtx/WrapCtx: same semantics for context-aware sources
// - Yielder.Step: yield one Result, suspend, receive the unwrapped value
//
// The driver is strictly sequential: no two steps ever run concurrently and
// ordering is exactly the source's yield order. Cancellation is cooperative;
// abandoning a run leaves the source to unwind on its next Yielder call, and
// any cleanup beyond that is the source's own responsibility.
package do

// Package chain provides a fluent wrapper around Result[T, E] for building
// synchronous short-circuiting pipelines without handling the variant branch
// at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then/Map/Recover/Ensure: same-type steps as methods
// - To/MapTo/ToTry: type-changing steps as free functions
// - Finally: collapse the chain into a final value via handlers
//
// Every step degrades to a res combinator; the chain adds no semantics of its
// own beyond carrying the context.
package chain

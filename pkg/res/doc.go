// Package res defines Result[T, E], a closed two-variant container for
// fallible computations, together with its combinator algebra. Failures are
// carried as data, never raised; the only panics the package produces are
// *UnwrapError contract-violation signals from variant-specific extraction
// calls made on the wrong variant.
//
// Key operations:
// - Success/Failure: the only two constructors
// - IsSuccess/IsFailure, Value/Err: side-effect-free inspection
// - Unwrap/UnwrapFailure/Expect: extraction with a panic contract
// - UnwrapOr/UnwrapOrElse/UnwrapOrRaise: safe or caller-directed extraction
// - Map/MapFailure/Alt/MapOr/MapOrElse: payload transformation
// - AndThen/OrElse: short-circuiting composition and recovery
// - Swap, Match, Equal, Inspect/InspectFailure: structure utilities
// - MapCtx/AndThenCtx/OrElseCtx: context-aware counterparts
//
// Combinators whose transform changes a type parameter are free functions
// because Go methods cannot introduce type parameters; same-shape operations
// are methods on Result.
package res

// Package result provides a generic two-variant Result[T, E]: the outcome of
// a fallible computation, holding either a success value or an error value.
//
// Highlights:
// - Success/Error: construct Result[T, E]
// - IsOk/IsErr, Unwrap/UnwrapOr/UnwrapOrElse/UnwrapErr: inspect and extract
// - Map/MapErr/MapOr/MapOrElse/AndThen/OrElse: combinators that short-circuit
//   on the variant they are not named for and pass it through unchanged
// - Ok/Err: project into maybe.Maybe
// - Propagate/Stop: non-local short-circuit out of Error, absorbed by the
//   nearest enclosing Stop boundary
// - From/Try/WrapResult/UnwrapResult: bridge (value, error) pairs and
//   panicking computations
//
// Errors carried as E are always values and are never raised by combinators;
// only Unwrap/UnwrapErr (with *UnwrapError) and the propagation mechanism
// convert between value-carried errors and raised failures.
package result

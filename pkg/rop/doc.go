// Package rop defines Result[T, E] and Option[T], Rust-like sum types for
// success/failure and presence/absence.
//
// Both are immutable values: construct them with Ok/Err (or Success/Fail
// when E is error) and Some/None, then inspect, transform or extract:
// - IsOk/IsErr, IsSome/IsNone: check the variant
// - Get/GetErr: comma-ok access, never fails
// - Unwrap/UnwrapErr: return an *UnwrapError on the wrong variant
// - MustUnwrap/Expect: panic with an *UnwrapError on the wrong variant
// - UnwrapOr/UnwrapOrElse/UnwrapOrDefault: total accessors
// - Map/MapErr/AndThen/OrElse: combinators that keep the payload types
//
// Combinators that change payload types live in package solo.
package rop

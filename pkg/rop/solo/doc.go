// Package solo contains synchronous, package-level combinators over
// rop.Result and rop.Option. Go methods cannot add type parameters, so every
// operation that changes a payload type lives here.
//
// Highlights:
// - Of/Try/Unpack: move between Go (T, error) pairs and Result[T, error]
// - Map/MapErr/MapOr: transform one side of a Result
// - AndThen/OrElse/Flatten: chain fallible steps
// - Finally: reduce to a concrete value via success/error handlers
// - Collect/CollectAll: gather many results into one
// - MapOption/AndThenOption/OkOr/Transpose: Option helpers
package solo

// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of rop.Result[T, error] values.
//
// - Start/FromValue/FromTry: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value
// - RepeatUntil/While: loop a step, capped by core.WithLoopOptions
// - Or/And: pick among several chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Once a chain holds an error every later step is skipped. A step whose
// context is already done fails the chain with ctx.Err().
package tiny

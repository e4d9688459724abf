// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of ResultOf[T] values.
//
// It composes the solo primitives and the core Or/OrElse methods behind a
// value-receiver Chain[T]:
// - Start/FromValue: begin a chain from a result or a value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Or/OrElse: fold failure back into success with a fallback
// - Ensure: run side effects without changing the result
// - Finally: reduce to a concrete value via handlers
package chain

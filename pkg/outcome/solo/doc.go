// Package solo contains single-value, synchronous transform combinators
// over ResultOf[T] and Maybe[T]. These complement the core algebra's
// AndAlso/Or methods with the cross-type operations a pipeline needs.
//
// Highlights:
// - Succeed/Fail: construct ResultOf[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Then: move from ResultOf[In] to ResultOf[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/FailOnError: side-effect and guard helpers
// - Finally: reduce to a concrete value via success/failure handlers
//
// Each ResultOf function has a Maybe twin (ThenMaybe, MapMaybe, ...) that
// additionally propagates None. The duplication is deliberate.
package solo

// Package outcome provides algebraic outcome types for operations that may
// succeed, fail, or yield no value, together with a small closed combinator
// vocabulary for composing them without exceptions.
//
// Three types share one discriminant:
// - Result: Success or Fail, no payload (Fail carries an opaque error)
// - ResultOf[T]: Success with a payload of type T, or Fail
// - Maybe[T]: ResultOf plus a distinct None tag for absence
//
// Two combinator families define the algebra:
// - AndAlso/AndAlsoAsync: run a continuation only on Success; Fail (and
//   None) short-circuit the rest of the chain untouched
// - Or/OrElse: substitute a fallback only when not Success; a Success
//   receiver passes through and the fallback is never evaluated
//
// Nil continuations, producers and fallback values are programmer errors:
// every combinator panics with a package sentinel before inspecting the
// receiver's tag. Domain failure and absence travel by value only.
//
// Deferred receivers are handled by the await subpackage on top of the
// future package.
package outcome

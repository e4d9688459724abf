package outcome

// Sequencer is satisfied by outcome types that can sequence a continuation
// after themselves, short-circuiting on anything but Success. R is the
// concrete outcome type itself.
type Sequencer[R any] interface {
	// AndAlso runs next only on Success and propagates everything else
	// untouched
	AndAlso(next func() R) R
}

// Fallback is satisfied by outcome types that can be folded into Success
// via a fallback value of type T. Result and Maybe implement it
// independently; the interface is the shared contract, not a shared base.
type Fallback[T, R any] interface {
	// Or returns the receiver on Success, otherwise Success(fallback)
	Or(fallback T) R
	// OrElse is Or with the fallback computed only when needed
	OrElse(produce func() T) R
}

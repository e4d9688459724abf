package await

import (
	"context"

	"github.com/ib-77/outcome/pkg/future"
	"github.com/ib-77/outcome/pkg/outcome"
)

// AndAlso lifts Sequencer.AndAlso onto a deferred receiver: recv is awaited
// first, then the synchronous combinator decides. A nil next panics in the
// caller's goroutine before anything is awaited.
func AndAlso[R outcome.Sequencer[R]](ctx context.Context, recv *future.Future[R],
	next func() R) *future.Future[R] {

	if next == nil {
		panic(outcome.ErrNilContinuation)
	}

	return future.FromFunc(func() (R, error) {
		cur, err := recv.Get(ctx)
		if err != nil {
			return cur, err
		}
		return cur.AndAlso(next), nil
	})
}

// AndAlsoAsync lifts AndAlso onto a deferred receiver and a deferred
// continuation. The continuation's future is awaited only when the awaited
// receiver is Success; the short-circuit path settles without a second
// suspension.
func AndAlsoAsync[R outcome.Sequencer[R]](ctx context.Context, recv *future.Future[R],
	next func(ctx context.Context) *future.Future[R]) *future.Future[R] {

	if next == nil {
		panic(outcome.ErrNilContinuation)
	}

	return future.FromFunc(func() (R, error) {
		cur, err := recv.Get(ctx)
		if err != nil {
			return cur, err
		}

		var awaitErr error
		out := cur.AndAlso(func() R {
			n, err := next(ctx).Get(ctx)
			if err != nil {
				awaitErr = err
			}
			return n
		})
		return out, awaitErr
	})
}

// Or lifts Fallback.Or onto a deferred receiver. The fallback value is
// validated in the caller's goroutine before the receiver is awaited.
func Or[T any, R outcome.Fallback[T, R]](ctx context.Context, recv *future.Future[R],
	fallback T) *future.Future[R] {

	if outcome.IsNil(fallback) {
		panic(outcome.ErrNilFallback)
	}

	return future.FromFunc(func() (R, error) {
		cur, err := recv.Get(ctx)
		if err != nil {
			return cur, err
		}
		return cur.Or(fallback), nil
	})
}

// OrElse lifts Fallback.OrElse onto a deferred receiver. The producer
// reference is validated in the caller's goroutine; its invocation stays
// deferred to the awaited receiver's non-Success path.
func OrElse[T any, R outcome.Fallback[T, R]](ctx context.Context, recv *future.Future[R],
	produce func() T) *future.Future[R] {

	if produce == nil {
		panic(outcome.ErrNilProducer)
	}

	return future.FromFunc(func() (R, error) {
		cur, err := recv.Get(ctx)
		if err != nil {
			return cur, err
		}
		return cur.OrElse(produce), nil
	})
}

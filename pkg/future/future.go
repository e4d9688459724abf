// Package future provides a single-completion container for a value that is
// still being computed. Unlike a channel, a completed Future can be read any
// number of times by any number of goroutines, which is what lets a deferred
// outcome be passed around a combinator chain.
package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the error reported by a future completed via Cancel.
var ErrCanceled = errors.New("future: canceled")

// Func is the signature accepted by FromFunc.
type Func[T any] func() (T, error)

// Future represents an asynchronous computation of a T. It is created
// uncompleted by New (or already running via FromFunc) and completes exactly
// once: the first of Complete, Fail or Cancel wins and later completions are
// ignored.
type Future[T any] struct {
	settled atomic.Uint32
	done    chan struct{}

	value T
	err   error
}

// New returns an uncompleted Future that must be completed manually through
// Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// FromFunc starts do on its own goroutine and returns a Future that
// completes with do's return values.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		v, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()

	return f
}

// Resolved returns a Future already completed with v. Reading it never
// blocks.
func Resolved[T any](v T) *Future[T] {
	f := New[T]()
	f.Complete(v)
	return f
}

// Complete settles the future with a value. Ignored if already settled.
func (f *Future[T]) Complete(v T) {
	f.settle(v, nil)
}

// Fail settles the future with an error. Ignored if already settled.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

// Cancel settles the future with ErrCanceled. Ignored if already settled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) settle(v T, err error) {
	if f.settled.CompareAndSwap(0, 1) {
		f.value = v
		f.err = err
		close(f.done)
	}
}

// Get blocks until the future settles or ctx is done, whichever comes
// first, and returns the settled value and error. Concurrent callers all
// observe the same pair.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsSettled reports whether the future has completed, without blocking.
func (f *Future[T]) IsSettled() bool {
	return f.settled.Load() == 1
}

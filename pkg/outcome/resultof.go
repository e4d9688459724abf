package outcome

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/future"
)

// ResultOf is the value-carrying counterpart of Result: Success holds a
// payload of type T, Fail holds an opaque error. The payload is populated
// iff the tag is Success.
type ResultOf[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	st        state
}

func Success[T any](v T) ResultOf[T] {
	return ResultOf[T]{
		value:     v,
		st:        stateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) ResultOf[T] {
	return ResultOf[T]{
		err:       err,
		st:        stateFail,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Value returns the successful payload. It is the zero value of T unless
// the tag is Success.
func (r ResultOf[T]) Value() T {
	return r.value
}

func (r ResultOf[T]) Err() error {
	return r.err
}

func (r ResultOf[T]) IsSuccess() bool {
	return r.st == stateSuccess
}

func (r ResultOf[T]) IsFailure() bool {
	return r.st == stateFail
}

func (r ResultOf[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r ResultOf[T]) Id() uuid.UUID {
	return r.id
}

// AndAlso sequences next after r: on Success the result of next replaces r
// entirely; on Fail r is returned as is and next is never invoked.
func (r ResultOf[T]) AndAlso(next func() ResultOf[T]) ResultOf[T] {
	if next == nil {
		panic(ErrNilContinuation)
	}

	if r.st == stateSuccess {
		return next()
	}
	return r
}

// AndAlsoAsync is AndAlso with a deferred continuation; the fail path never
// suspends.
func (r ResultOf[T]) AndAlsoAsync(ctx context.Context, next func(ctx context.Context) *future.Future[ResultOf[T]]) *future.Future[ResultOf[T]] {
	if next == nil {
		panic(ErrNilContinuation)
	}

	if r.st == stateSuccess {
		return next(ctx)
	}
	return future.Resolved(r)
}

// Or substitutes fallback when r is not Success. On Success r is returned
// unchanged; otherwise a fresh Success wrapping fallback is returned, so Or
// never yields Fail. A nil fallback panics with ErrNilFallback before the
// tag is inspected.
func (r ResultOf[T]) Or(fallback T) ResultOf[T] {
	if IsNil(fallback) {
		panic(ErrNilFallback)
	}

	if r.st == stateSuccess {
		return r
	}
	return Success(fallback)
}

// OrElse is Or with a lazily evaluated fallback: produce is invoked only
// when r is not Success. The producer reference is validated immediately;
// the value it produces is validated at invocation.
func (r ResultOf[T]) OrElse(produce func() T) ResultOf[T] {
	if produce == nil {
		panic(ErrNilProducer)
	}

	if r.st == stateSuccess {
		return r
	}

	v := produce()
	if IsNil(v) {
		panic(ErrNilFallback)
	}
	return Success(v)
}

package outcome

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/future"
)

// Maybe is structurally parallel to ResultOf but models a wider failure
// space: besides Success and Fail it distinguishes None, the deliberate
// absence of a value. The combinators are implemented independently of
// ResultOf so that neither type's invariants leak into the other.
type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	st        state
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:     v,
		st:        stateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{
		st:        stateNone,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func MaybeFail[T any](err error) Maybe[T] {
	return Maybe[T]{
		err:       err,
		st:        stateFail,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Value returns the present payload. It is the zero value of T unless the
// tag is Success.
func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) Err() error {
	return m.err
}

func (m Maybe[T]) IsSuccess() bool {
	return m.st == stateSuccess
}

func (m Maybe[T]) IsFailure() bool {
	return m.st == stateFail
}

func (m Maybe[T]) IsNone() bool {
	return m.st == stateNone
}

func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Maybe[T]) Id() uuid.UUID {
	return m.id
}

// AndAlso sequences next after m: on Success the result of next replaces m
// entirely; Fail and None pass through untouched and next is never invoked.
func (m Maybe[T]) AndAlso(next func() Maybe[T]) Maybe[T] {
	if next == nil {
		panic(ErrNilContinuation)
	}

	if m.st == stateSuccess {
		return next()
	}
	return m
}

// AndAlsoAsync is AndAlso with a deferred continuation; the Fail and None
// paths never suspend.
func (m Maybe[T]) AndAlsoAsync(ctx context.Context, next func(ctx context.Context) *future.Future[Maybe[T]]) *future.Future[Maybe[T]] {
	if next == nil {
		panic(ErrNilContinuation)
	}

	if m.st == stateSuccess {
		return next(ctx)
	}
	return future.Resolved(m)
}

// Or substitutes fallback when m is not Success, folding both Fail and None
// into a fresh Success. On Success m is returned unchanged. Or never yields
// Fail or None.
func (m Maybe[T]) Or(fallback T) Maybe[T] {
	if IsNil(fallback) {
		panic(ErrNilFallback)
	}

	if m.st == stateSuccess {
		return m
	}
	return Some(fallback)
}

// OrElse is Or with a lazily evaluated fallback: produce is invoked only
// when m is not Success. The producer reference is validated immediately;
// the value it produces is validated at invocation.
func (m Maybe[T]) OrElse(produce func() T) Maybe[T] {
	if produce == nil {
		panic(ErrNilProducer)
	}

	if m.st == stateSuccess {
		return m
	}

	v := produce()
	if IsNil(v) {
		panic(ErrNilFallback)
	}
	return Some(v)
}

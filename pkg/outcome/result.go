package outcome

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/future"
)

// Result reports the outcome of an operation that yields no value: it is
// either Success or Fail. Fail carries an opaque error set at construction
// and passed through combinators untouched. A Result is an immutable value;
// copies may be held and combined from multiple goroutines.
type Result struct {
	id        uuid.UUID
	createdAt time.Time
	err       error
	st        state
}

// OK returns a Success-tagged Result.
func OK() Result {
	return Result{
		st:        stateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failed returns a Fail-tagged Result carrying err. A nil err is permitted;
// the tag alone decides failure.
func Failed(err error) Result {
	return Result{
		err:       err,
		st:        stateFail,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result) Err() error {
	return r.err
}

func (r Result) IsSuccess() bool {
	return r.st == stateSuccess
}

func (r Result) IsFailure() bool {
	return r.st == stateFail
}

func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result) Id() uuid.UUID {
	return r.id
}

// AndAlso sequences next after r: on Success the result of next replaces r
// entirely; on Fail r is returned as is and next is never invoked. A nil
// next panics with ErrNilContinuation before the tag is inspected.
func (r Result) AndAlso(next func() Result) Result {
	if next == nil {
		panic(ErrNilContinuation)
	}

	if r.st == stateSuccess {
		return next()
	}
	return r
}

// AndAlsoAsync is AndAlso with a deferred continuation. On Success the
// continuation's future is returned directly; on Fail an already-completed
// future holding r is returned and next is never invoked, so the fail path
// never suspends.
func (r Result) AndAlsoAsync(ctx context.Context, next func(ctx context.Context) *future.Future[Result]) *future.Future[Result] {
	if next == nil {
		panic(ErrNilContinuation)
	}

	if r.st == stateSuccess {
		return next(ctx)
	}
	return future.Resolved(r)
}

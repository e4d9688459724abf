package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps a ResultOf with context to enable fluent composition without
// branching at every step.
type Chain[T any] struct {
	ctx context.Context
	res outcome.ResultOf[T]
}

// Start creates a new chain from an existing result.
func Start[T any](ctx context.Context, r outcome.ResultOf[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

// Result returns the underlying result.
func (c Chain[T]) Result() outcome.ResultOf[T] {
	return c.res
}

// Then composes a function that already returns a result.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.ResultOf[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes a function that returns (T, error), converting the error
// to a failure.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Or folds a failed chain back into success with a literal fallback.
func (c Chain[T]) Or(fallback T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.Or(fallback)}
}

// OrElse folds a failed chain back into success with a lazily produced
// fallback.
func (c Chain[T]) OrElse(produce func() T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.OrElse(produce)}
}

// Ensure triggers side effects for success or failure without changing the
// result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

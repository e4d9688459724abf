package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// The Maybe family mirrors the ResultOf functions above but propagates the
// extra None tag. Kept separate on purpose: the two types model different
// failure spaces.

func ThenMaybe[In, Out any](ctx context.Context, input outcome.Maybe[In],
	onSuccess func(ctx context.Context, r In) outcome.Maybe[Out]) outcome.Maybe[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	if input.IsNone() {
		return outcome.None[Out]()
	}
	return outcome.MaybeFail[Out](input.Err())
}

func MapMaybe[In, Out any](ctx context.Context, input outcome.Maybe[In],
	onSuccess func(ctx context.Context, r In) Out) outcome.Maybe[Out] {

	if input.IsSuccess() {
		return outcome.Some(onSuccess(ctx, input.Value()))
	}
	if input.IsNone() {
		return outcome.None[Out]()
	}
	return outcome.MaybeFail[Out](input.Err())
}

func TeeMaybe[T any](ctx context.Context, input outcome.Maybe[T],
	onSuccess func(ctx context.Context, r outcome.Maybe[T])) outcome.Maybe[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

// FinallyMaybe collapses the maybe into a concrete value via the success,
// none or failure handler.
func FinallyMaybe[In, Out any](ctx context.Context, input outcome.Maybe[In],
	onSuccess func(ctx context.Context, r In) Out,
	onNone func(ctx context.Context) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	if input.IsNone() {
		return onNone(ctx)
	}
	return onFailure(ctx, input.Err())
}

package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.ResultOf[T] {
	return outcome.Success(input)
}

func Fail[T any](err error) outcome.ResultOf[T] {
	return outcome.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.ResultOf[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.ResultOf[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.ResultOf[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(ctx, input.Value()); valid {
			return input
		} else {
			return outcome.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// Then switches from ResultOf[In] to ResultOf[Out], short-circuiting on
// failure.
func Then[In, Out any](ctx context.Context, input outcome.ResultOf[In],
	onSuccess func(ctx context.Context, r In) outcome.ResultOf[Out]) outcome.ResultOf[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.Fail[Out](input.Err())
}

// Map transforms the successful value; failures pass through with their
// error.
func Map[In, Out any](ctx context.Context, input outcome.ResultOf[In],
	onSuccess func(ctx context.Context, r In) Out) outcome.ResultOf[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(ctx, input.Value()))
	}
	return outcome.Fail[Out](input.Err())
}

// Try calls a function returning (Out, error) and converts the error, if
// any, into a failure.
func Try[In, Out any](ctx context.Context, input outcome.ResultOf[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.ResultOf[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return outcome.Fail[Out](err)
		}
		return outcome.Success(out)
	}
	return outcome.Fail[Out](input.Err())
}

// Tee runs a side effect on success without changing the result.
func Tee[T any](ctx context.Context, input outcome.ResultOf[T],
	onSuccess func(ctx context.Context, r outcome.ResultOf[T])) outcome.ResultOf[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

func FailOnError[T any](ctx context.Context, input outcome.ResultOf[T],
	maybeErr func(ctx context.Context, in T) error) outcome.ResultOf[T] {

	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return outcome.Fail[T](err)
		}
		return input
	}
	return input
}

// Finally collapses the result into a concrete value via the success or
// failure handler.
func Finally[In, Out any](ctx context.Context, input outcome.ResultOf[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}

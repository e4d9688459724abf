package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
)

var errBoom = errors.New("boom")

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	out := Start(ctx, outcome.Success(5)).Result()
	req.True(out.IsSuccess())
	req.Equal(5, out.Value())
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	out := FromValue(context.Background(), 7).Result()
	req.True(out.IsSuccess())
	req.Equal(7, out.Value())
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	called := false
	out := Start(ctx, outcome.Fail[int](errBoom)).
		Then(func(ctx context.Context, t int) outcome.ResultOf[int] {
			called = true
			return outcome.Success(t + 1)
		}).Result()

	req.False(called)
	req.True(out.IsFailure())
	req.ErrorIs(out.Err(), errBoom)
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	out := FromValue(context.Background(), 3).
		Then(func(ctx context.Context, t int) outcome.ResultOf[int] {
			return outcome.Success(t * 2)
		}).Result()

	req.True(out.IsSuccess())
	req.Equal(6, out.Value())
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	out := FromValue(context.Background(), 4).
		ThenTry(func(ctx context.Context, t int) (int, error) {
			return t * t, nil
		}).Result()
	req.Equal(16, out.Value())

	out = FromValue(context.Background(), 4).
		ThenTry(func(ctx context.Context, t int) (int, error) {
			return 0, errBoom
		}).Result()
	req.True(out.IsFailure())
	req.ErrorIs(out.Err(), errBoom)
}

func TestMap(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	out := FromValue(context.Background(), 10).
		Map(func(ctx context.Context, t int) int { return t + 1 }).
		Result()
	req.Equal(11, out.Value())
}

func TestOr_RecoversFailedChain(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	out := Start(ctx, outcome.Fail[int](errBoom)).Or(5).Result()
	req.True(out.IsSuccess())
	req.Equal(5, out.Value())

	// success keeps its own value
	out = FromValue(ctx, 3).Or(5).Result()
	req.Equal(3, out.Value())
}

func TestOrElse_LazyRecovery(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	calls := 0
	produce := func() int {
		calls++
		return 9
	}

	out := Start(ctx, outcome.Fail[int](errBoom)).OrElse(produce).Result()
	req.Equal(1, calls)
	req.Equal(9, out.Value())

	FromValue(ctx, 1).OrElse(produce)
	req.Equal(1, calls)
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	var ok int
	var failed error

	FromValue(ctx, 2).Ensure(
		func(ctx context.Context, t int) { ok = t },
		func(ctx context.Context, err error) { failed = err })
	req.Equal(2, ok)
	req.NoError(failed)

	Start(ctx, outcome.Fail[int](errBoom)).Ensure(
		func(ctx context.Context, t int) { ok = -1 },
		func(ctx context.Context, err error) { failed = err })
	req.Equal(2, ok)
	req.ErrorIs(failed, errBoom)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	got := FromValue(ctx, 2).
		Map(func(ctx context.Context, t int) int { return t * 10 }).
		Finally(
			func(ctx context.Context, t int) int { return t },
			func(ctx context.Context, err error) int { return -1 })
	req.Equal(20, got)

	got = Start(ctx, outcome.Fail[int](errBoom)).Finally(
		func(ctx context.Context, t int) int { return t },
		func(ctx context.Context, err error) int { return -1 })
	req.Equal(-1, got)
}

package outcome

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/future"
)

func TestMaybeConstructors(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	s := Some("x")
	req.True(s.IsSuccess())
	req.False(s.IsNone())
	req.False(s.IsFailure())
	req.Equal("x", s.Value())

	n := None[string]()
	req.True(n.IsNone())
	req.False(n.IsSuccess())
	req.False(n.IsFailure())
	req.Empty(n.Value())
	req.NoError(n.Err())

	f := MaybeFail[string](errBoom)
	req.True(f.IsFailure())
	req.False(f.IsSuccess())
	req.False(f.IsNone())
	req.ErrorIs(f.Err(), errBoom)
}

func TestMaybeOr_SuccessPassesThrough(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := Some("x")
	out := m.Or("y")

	req.Equal("x", out.Value())
	req.Equal(m.Id(), out.Id())
}

func TestMaybeOr_NoneTakesFallback(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	out := None[string]().Or("y")

	req.True(out.IsSuccess())
	req.False(out.IsNone())
	req.Equal("y", out.Value())
}

func TestMaybeOr_FailureTakesFallback(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	out := MaybeFail[string](errBoom).Or("y")

	req.True(out.IsSuccess())
	req.Equal("y", out.Value())
	req.NoError(out.Err())
}

func TestMaybeOrElse_NoneInvokesProducerOnce(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	calls := 0
	out := None[string]().OrElse(func() string {
		calls++
		return "x"
	})

	req.Equal(1, calls)
	req.True(out.IsSuccess())
	req.Equal("x", out.Value())
}

func TestMaybeOrElse_SuccessNeverInvokesProducer(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := Some("x")
	called := false

	out := m.OrElse(func() string {
		called = true
		return "y"
	})

	req.False(called)
	req.Equal(m.Id(), out.Id())
}

func TestMaybeOr_NilArgumentsPanicLikeResultOf(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	req.PanicsWithValue(ErrNilFallback, func() {
		Some(&struct{}{}).Or(nil)
	})
	req.PanicsWithValue(ErrNilFallback, func() {
		None[*struct{}]().Or(nil)
	})
	req.PanicsWithValue(ErrNilProducer, func() {
		None[string]().OrElse(nil)
	})
	req.PanicsWithValue(ErrNilFallback, func() {
		None[*int]().OrElse(func() *int { return nil })
	})
}

func TestMaybeAndAlso(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	next := Some(7)
	out := Some(1).AndAlso(func() Maybe[int] { return next })
	req.Equal(next.Id(), out.Id())

	// None short-circuits like Fail
	n := None[int]()
	called := false
	out = n.AndAlso(func() Maybe[int] {
		called = true
		return next
	})
	req.False(called)
	req.Equal(n.Id(), out.Id())
	req.True(out.IsNone())

	req.PanicsWithValue(ErrNilContinuation, func() {
		n.AndAlso(nil)
	})
}

func TestMaybeAndAlsoAsync(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	next := Some(7)
	f := Some(1).AndAlsoAsync(ctx, func(ctx context.Context) *future.Future[Maybe[int]] {
		return future.Resolved(next)
	})
	out, err := f.Get(ctx)
	req.NoError(err)
	req.Equal(next.Id(), out.Id())

	n := None[int]()
	f = n.AndAlsoAsync(ctx, func(ctx context.Context) *future.Future[Maybe[int]] {
		return future.New[Maybe[int]]()
	})
	req.True(f.IsSettled())
	out, err = f.Get(ctx)
	req.NoError(err)
	req.Equal(n.Id(), out.Id())
}

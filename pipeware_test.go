package pipeware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipeware/pipeware"
	"github.com/pipeware/pipeware/core/exchange"
)

func tagMiddleware(tag string, trace *[]string) pipeware.Middleware {
	return func(next pipeware.Handler) pipeware.Handler {
		return func(ctx context.Context, ex *exchange.Exchange) error {
			*trace = append(*trace, tag+":before")
			err := next(ctx, ex)
			*trace = append(*trace, tag+":after")
			return err
		}
	}
}

func TestChain(t *testing.T) {
	t.Run("first middleware runs first", func(t *testing.T) {
		var trace []string
		endpoint := func(ctx context.Context, ex *exchange.Exchange) error {
			trace = append(trace, "endpoint")
			return nil
		}

		handler := pipeware.Chain([]pipeware.Middleware{
			tagMiddleware("outer", &trace),
			tagMiddleware("inner", &trace),
		}, endpoint)

		require.NoError(t, handler(context.Background(), exchange.New(nil)))
		assert.Equal(t, []string{
			"outer:before", "inner:before", "endpoint", "inner:after", "outer:after",
		}, trace)
	})

	t.Run("empty stack returns the endpoint", func(t *testing.T) {
		called := false
		endpoint := func(ctx context.Context, ex *exchange.Exchange) error {
			called = true
			return nil
		}
		handler := pipeware.Chain(nil, endpoint)
		require.NoError(t, handler(context.Background(), exchange.New(nil)))
		assert.True(t, called)
	})
}

func TestPipeline(t *testing.T) {
	t.Run("use accumulates middlewares in order", func(t *testing.T) {
		var trace []string
		handler := pipeware.New().
			Use(tagMiddleware("a", &trace)).
			Use(tagMiddleware("b", &trace)).
			Then(func(ctx context.Context, ex *exchange.Exchange) error {
				trace = append(trace, "endpoint")
				return nil
			})

		require.NoError(t, handler(context.Background(), exchange.New(nil)))
		assert.Equal(t, []string{
			"a:before", "b:before", "endpoint", "b:after", "a:after",
		}, trace)
	})

	t.Run("nil endpoint fails instead of panicking", func(t *testing.T) {
		handler := pipeware.New().Then(nil)
		err := handler(context.Background(), exchange.New(nil))
		assert.ErrorIs(t, err, pipeware.ErrNilHandler)
	})

	t.Run("handler errors propagate through the stack", func(t *testing.T) {
		var trace []string
		wantErr := assert.AnError
		handler := pipeware.New().
			Use(tagMiddleware("a", &trace)).
			Then(func(ctx context.Context, ex *exchange.Exchange) error {
				return wantErr
			})

		err := handler(context.Background(), exchange.New(nil))
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, []string{"a:before", "a:after"}, trace)
	})
}

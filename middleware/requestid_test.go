package middleware_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipeware/pipeware/core/exchange"
	"github.com/pipeware/pipeware/middleware"
)

func noopHandler(ctx context.Context, ex *exchange.Exchange) error {
	return nil
}

func TestRequestID(t *testing.T) {
	t.Run("assigns a uuid header by default", func(t *testing.T) {
		ex := exchange.New(nil)
		handler := middleware.RequestID()(noopHandler)

		require.NoError(t, handler(context.Background(), ex))

		id := ex.Headers.Get("X-Request-ID")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("exposes the id through the exchange env", func(t *testing.T) {
		ex := exchange.New(nil)
		handler := middleware.RequestID()(noopHandler)

		require.NoError(t, handler(context.Background(), ex))

		id, ok := middleware.GetRequestID(ex)
		assert.True(t, ok)
		assert.Equal(t, ex.Headers.Get("X-Request-ID"), id)
	})

	t.Run("unassigned exchange reports no id", func(t *testing.T) {
		_, ok := middleware.GetRequestID(exchange.New(nil))
		assert.False(t, ok)
	})

	t.Run("custom generator and header name", func(t *testing.T) {
		ex := exchange.New(nil)
		handler := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator:  func() string { return "fixed-id" },
			HeaderName: "X-Trace-ID",
		})(noopHandler)

		require.NoError(t, handler(context.Background(), ex))
		assert.Equal(t, "fixed-id", ex.Headers.Get("X-Trace-ID"))
	})

	t.Run("keep existing leaves a preset header untouched", func(t *testing.T) {
		ex := exchange.New(nil)
		ex.Headers.Set("X-Request-ID", "preset")
		handler := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			KeepExisting: true,
		})(noopHandler)

		require.NoError(t, handler(context.Background(), ex))
		assert.Equal(t, "preset", ex.Headers.Get("X-Request-ID"))
	})

	t.Run("overwrites a preset header by default", func(t *testing.T) {
		ex := exchange.New(nil)
		ex.Headers.Set("X-Request-ID", "preset")
		handler := middleware.RequestID()(noopHandler)

		require.NoError(t, handler(context.Background(), ex))
		assert.NotEqual(t, "preset", ex.Headers.Get("X-Request-ID"))
	})

	t.Run("skip bypasses assignment", func(t *testing.T) {
		ex := exchange.New(nil)
		handler := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Skip: func(ex *exchange.Exchange) bool { return true },
		})(noopHandler)

		require.NoError(t, handler(context.Background(), ex))
		assert.False(t, ex.Headers.Has("X-Request-ID"))
	})
}

package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipeware/pipeware/core/exchange"
	"github.com/pipeware/pipeware/core/response"
	"github.com/pipeware/pipeware/core/status"
)

func TestResponse_Status(t *testing.T) {
	t.Run("set then get round trips code and reason", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		require.NoError(t, resp.SetStatus("404 Not Found"))
		assert.Equal(t, "404 Not Found", resp.Status())
		assert.Equal(t, 404, resp.StatusCode())
	})

	t.Run("custom reason survives the round trip", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		require.NoError(t, resp.SetStatus("404 Nothing Here"))
		assert.Equal(t, "404 Nothing Here", resp.Status())
	})

	t.Run("bare code synthesizes the canonical phrase", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		require.NoError(t, resp.SetStatus("404"))
		assert.Equal(t, "404 Not Found", resp.Status())
	})

	t.Run("unknown bare code renders code only", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		require.NoError(t, resp.SetStatus("299"))
		assert.Equal(t, "299", resp.Status())
	})

	t.Run("too-short line fails and mutates nothing", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		require.NoError(t, resp.SetStatus("201 Created"))

		err := resp.SetStatus("99")
		assert.ErrorIs(t, err, status.ErrMalformedStatusLine)
		assert.Equal(t, "201 Created", resp.Status())
	})

	t.Run("missing space after code fails and mutates nothing", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		require.NoError(t, resp.SetStatus("201 Created"))

		err := resp.SetStatus("5000")
		assert.ErrorIs(t, err, status.ErrMalformedStatusLine)
		assert.Equal(t, "201 Created", resp.Status())
	})
}

func TestResponse_ReasonPhrase(t *testing.T) {
	t.Run("defaults to table phrase for the current code", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		resp.SetStatusCode(500)
		assert.Equal(t, "Internal Server Error", resp.ReasonPhrase())
	})

	t.Run("explicit phrase overrides synthesis", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		resp.SetStatusCode(500)
		resp.SetReasonPhrase("Everything Is Fine")
		assert.Equal(t, "Everything Is Fine", resp.ReasonPhrase())
	})
}

func TestResponse_ContentType(t *testing.T) {
	resp := response.New(exchange.New(nil))
	assert.Equal(t, "", resp.ContentType())

	resp.SetContentType("application/json")
	assert.Equal(t, "application/json", resp.ContentType())
	assert.Equal(t, []string{"application/json"}, resp.Values("Content-Type"))
}

func TestResponse_ContentLength(t *testing.T) {
	t.Run("absent header fails rather than defaulting to zero", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		_, err := resp.ContentLength()
		assert.ErrorIs(t, err, response.ErrContentLength)
	})

	t.Run("non-numeric header fails", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		resp.SetHeader("Content-Length", "many")
		_, err := resp.ContentLength()
		assert.ErrorIs(t, err, response.ErrContentLength)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		resp.SetContentLength(1024)
		n, err := resp.ContentLength()
		require.NoError(t, err)
		assert.Equal(t, int64(1024), n)
	})
}

func TestResponse_Headers(t *testing.T) {
	t.Run("absent header yields empty single value and nil sequence", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		assert.Equal(t, "", resp.Header("X-Foo"))
		assert.Nil(t, resp.Values("X-Foo"))
	})

	t.Run("add preserves multiplicity, header combines", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		resp.AddHeader("X-Foo", "a")
		resp.AddHeader("X-Foo", "b")
		assert.Equal(t, "a,b", resp.Header("X-Foo"))
		assert.Equal(t, []string{"a", "b"}, resp.Values("X-Foo"))
	})

	t.Run("set with empty value removes the named header", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		resp.SetHeader("X-Foo", "a")
		resp.SetHeader("X-Foo", "")
		assert.Nil(t, resp.Values("X-Foo"))
	})

	t.Run("mutations are visible through the shared exchange", func(t *testing.T) {
		ex := exchange.New(nil)
		resp := response.New(ex)
		resp.SetHeader("X-Foo", "bar")
		assert.Equal(t, "bar", ex.Headers.Get("X-Foo"))
	})
}

func TestResponse_OnSendingHeaders(t *testing.T) {
	t.Run("unsupported without a host registry", func(t *testing.T) {
		resp := response.New(exchange.New(nil))
		err := resp.OnSendingHeaders(func() {})
		assert.ErrorIs(t, err, exchange.ErrHooksUnsupported)
	})

	t.Run("registered callback fires at commit", func(t *testing.T) {
		reg := exchange.NewHookRegistry()
		ex := exchange.New(nil, exchange.WithHooks(reg))
		resp := response.New(ex)

		fired := false
		require.NoError(t, resp.OnSendingHeaders(func() { fired = true }))
		assert.False(t, fired)

		reg.Fire()
		assert.True(t, fired)
	})
}

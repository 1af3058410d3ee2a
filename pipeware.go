// Package pipeware provides the composition primitives for a middleware
// pipeline operating on a shared per-transaction exchange. Handlers receive
// a cancellation context and the exchange; they mutate response state through
// the core/response façade and write body bytes to the stream the exchange
// carries. The package performs no network I/O and no scheduling of its own.
package pipeware

import (
	"context"
	"errors"

	"github.com/pipeware/pipeware/core/exchange"
)

// ErrNilHandler indicates a pipeline was finalized without an endpoint.
var ErrNilHandler = errors.New("pipeline endpoint is nil")

// Handler processes one transaction's exchange. Errors surface synchronously
// to the caller; retry is hosting-layer policy.
type Handler func(ctx context.Context, ex *exchange.Exchange) error

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware func(next Handler) Handler

// Chain builds a single handler from a middleware stack and endpoint.
// The first middleware runs first.
func Chain(middlewares []Middleware, endpoint Handler) Handler {
	handler := endpoint

	// Wrap in reverse order so the first middleware is outermost.
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

// Pipeline accumulates middlewares and finalizes them around an endpoint.
type Pipeline struct {
	middlewares []Middleware
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Use appends middlewares to the stack. Returns the pipeline for chaining.
func (p *Pipeline) Use(middlewares ...Middleware) *Pipeline {
	p.middlewares = append(p.middlewares, middlewares...)
	return p
}

// Then finalizes the pipeline around endpoint. A nil endpoint yields a
// handler that fails with ErrNilHandler rather than panicking mid-request.
func (p *Pipeline) Then(endpoint Handler) Handler {
	if endpoint == nil {
		endpoint = func(ctx context.Context, ex *exchange.Exchange) error {
			return ErrNilHandler
		}
	}
	return Chain(p.middlewares, endpoint)
}

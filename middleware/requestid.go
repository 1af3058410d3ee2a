package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/pipeware/pipeware"
	"github.com/pipeware/pipeware/core/exchange"
	"github.com/pipeware/pipeware/core/response"
)

// requestIDEnvKey stores the assigned request ID in the exchange env bag.
const requestIDEnvKey = "pipeware.requestID"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific exchanges
	Skip func(ex *exchange.Exchange) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the response header for the request ID (default: "X-Request-ID")
	HeaderName string
	// KeepExisting leaves an already-set response header untouched instead of
	// overwriting it
	KeepExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// It assigns a unique identifier to each transaction, exposing it both as a
// response header and in the exchange env bag.
func RequestID() pipeware.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration.
func RequestIDWithConfig(cfg RequestIDConfig) pipeware.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next pipeware.Handler) pipeware.Handler {
		return func(ctx context.Context, ex *exchange.Exchange) error {
			if cfg.Skip != nil && cfg.Skip(ex) {
				return next(ctx, ex)
			}

			resp := response.New(ex)

			requestID := resp.Header(cfg.HeaderName)
			if requestID == "" || !cfg.KeepExisting {
				requestID = cfg.Generator()
				resp.SetHeader(cfg.HeaderName, requestID)
			}

			exchange.Set(ex, requestIDEnvKey, requestID)

			return next(ctx, ex)
		}
	}
}

// GetRequestID retrieves the request ID assigned to the exchange.
// Returns the ID and a boolean indicating whether one was assigned.
func GetRequestID(ex *exchange.Exchange) (string, bool) {
	id, err := exchange.Get(ex, requestIDEnvKey, "")
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

// Package middleware provides cross-cutting pipeline middlewares built on
// the response façade: request ID assignment and structured transaction
// logging.
//
// Middlewares compose through the root package's pipeline:
//
//	handler := pipeware.New().
//		Use(middleware.RequestID(), middleware.Logging()).
//		Then(endpoint)
package middleware

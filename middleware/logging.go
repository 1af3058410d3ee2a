package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/pipeware/pipeware"
	"github.com/pipeware/pipeware/core/exchange"
	"github.com/pipeware/pipeware/core/logger"
	"github.com/pipeware/pipeware/core/response"
)

// LoggingConfig configures the transaction logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific exchanges
	Skip func(ex *exchange.Exchange) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for completed transactions (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowThreshold logs transactions slower than this at warn level
	// (default: disabled)
	SlowThreshold time.Duration
}

// Logging creates a transaction logging middleware with default configuration.
func Logging() pipeware.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithConfig creates a transaction logging middleware with custom
// configuration. It records the final status line, duration, and any handler
// error once the downstream handler returns.
func LoggingWithConfig(cfg LoggingConfig) pipeware.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next pipeware.Handler) pipeware.Handler {
		return func(ctx context.Context, ex *exchange.Exchange) error {
			if cfg.Skip != nil && cfg.Skip(ex) {
				return next(ctx, ex)
			}

			start := time.Now()
			err := next(ctx, ex)
			duration := time.Since(start)

			resp := response.New(ex)
			id, _ := GetRequestID(ex)
			attrs := []slog.Attr{
				logger.Status(resp.StatusCode()),
				slog.String("reason", resp.ReasonPhrase()),
				logger.Duration(duration),
				logger.RequestID(id),
			}

			level := cfg.LogLevel
			msg := "transaction completed"
			switch {
			case err != nil:
				level = slog.LevelError
				msg = "transaction failed"
				attrs = append(attrs, logger.Error(err))
			case cfg.SlowThreshold > 0 && duration > cfg.SlowThreshold:
				level = slog.LevelWarn
				msg = "slow transaction"
			}

			cfg.Logger.LogAttrs(ctx, level, msg, attrs...)

			return err
		}
	}
}

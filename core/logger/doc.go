// Package logger provides slog attribute helpers shared by pipeline
// middlewares. Helpers return empty attributes for zero inputs, which slog
// drops, keeping call sites free of nil checks.
package logger

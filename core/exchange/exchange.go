package exchange

import (
	"context"
	"io"
	"net/http"

	"github.com/pipeware/pipeware/core/header"
)

// Exchange carries the mutable response-side state of one HTTP transaction.
// It is created and owned by the hosting layer; façades and middlewares hold
// transient references, so every mutation is visible to all other holders for
// the lifetime of the transaction.
//
// The Exchange holds no locks. One transaction is expected to be driven by a
// single logical handler at a time; safety under concurrent mutation is the
// hosting layer's responsibility.
type Exchange struct {
	// StatusCode is the numeric response status. Defaults to 200.
	StatusCode int

	// ReasonPhrase is the explicit reason phrase, if any. When empty,
	// accessors synthesize the canonical phrase for StatusCode.
	ReasonPhrase string

	// Headers is the shared response header collection.
	Headers header.Header

	// Body is the response body sink. The exchange never owns its
	// lifecycle; it only forwards bytes to it.
	Body io.Writer

	hooks *HookRegistry
	env   map[string]any
}

// ContextWriter is implemented by body sinks that support cancellable writes.
// Cancellation-aware write paths delegate to it when available instead of
// racing a plain Write against the context.
type ContextWriter interface {
	WriteContext(ctx context.Context, p []byte) (int, error)
}

// Option configures an Exchange during construction.
type Option func(*Exchange)

// WithHeaders seeds the exchange with an existing header collection, sharing
// it rather than copying. Useful when the host already owns a collection.
func WithHeaders(h header.Header) Option {
	return func(ex *Exchange) {
		if h != nil {
			ex.Headers = h
		}
	}
}

// WithStatus sets the initial status code.
func WithStatus(code int) Option {
	return func(ex *Exchange) {
		if code != 0 {
			ex.StatusCode = code
		}
	}
}

// WithHooks attaches a header-commit hook registry. Without one, hook
// registration fails with ErrHooksUnsupported.
func WithHooks(reg *HookRegistry) Option {
	return func(ex *Exchange) {
		ex.hooks = reg
	}
}

// WithEnv seeds the host extension bag. The map is shared, not copied, so the
// host keeps visibility into later mutations.
func WithEnv(env map[string]any) Option {
	return func(ex *Exchange) {
		if env != nil {
			ex.env = env
		}
	}
}

// New creates an Exchange writing its body to sink. The status code defaults
// to 200 and the header collection starts empty.
func New(sink io.Writer, opts ...Option) *Exchange {
	ex := &Exchange{
		StatusCode: http.StatusOK,
		Headers:    header.Header{},
		Body:       sink,
		env:        make(map[string]any),
	}
	for _, opt := range opts {
		opt(ex)
	}
	return ex
}

// OnSendingHeaders registers fn to run immediately before the hosting layer
// commits the response headers. It fails with ErrHooksUnsupported when the
// host provided no registry. The exchange only appends; the host fires the
// registry once at the commit point.
func (ex *Exchange) OnSendingHeaders(fn func()) error {
	if ex.hooks == nil {
		return ErrHooksUnsupported
	}
	ex.hooks.Register(fn)
	return nil
}

// Hooks returns the attached hook registry, or nil when the host provided
// none. Intended for the hosting layer, which invokes it at commit time.
func (ex *Exchange) Hooks() *HookRegistry {
	return ex.hooks
}

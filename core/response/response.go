package response

import (
	"fmt"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/pipeware/pipeware/core/exchange"
	"github.com/pipeware/pipeware/core/header"
	"github.com/pipeware/pipeware/core/status"
)

// Canonical header names manipulated by the façade's convenience accessors.
const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderSetCookie     = "Set-Cookie"
)

// Response is a stateless view over one exchange's response state. All state
// lives in the shared exchange; the façade holds a transient reference and a
// configured text encoding for string writes. It is not reentrant-safe:
// header, cookie, and body mutations within one transaction are expected to
// be sequential.
type Response struct {
	ex  *exchange.Exchange
	enc encoding.Encoding
}

// Option configures a Response during construction.
type Option func(*Response)

// WithEncoding sets the text encoding used by string writes. The default is
// UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(r *Response) {
		if enc != nil {
			r.enc = enc
		}
	}
}

// New wraps an exchange in a response façade.
func New(ex *exchange.Exchange, opts ...Option) *Response {
	r := &Response{
		ex:  ex,
		enc: unicode.UTF8,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Exchange returns the underlying shared exchange.
func (r *Response) Exchange() *exchange.Exchange {
	return r.ex
}

// Status renders the combined status line: "<code>" when no reason phrase is
// available, else "<code> <reason>". When no explicit phrase is stored, the
// canonical phrase for the current code is synthesized.
func (r *Response) Status() string {
	return status.FormatLine(r.ex.StatusCode, r.ReasonPhrase())
}

// SetStatus parses a combined status line and stores its code and reason.
// The line must satisfy the status-line grammar; on failure the error is
// returned and neither code nor reason is mutated.
func (r *Response) SetStatus(line string) error {
	code, phrase, err := status.ParseLine(line)
	if err != nil {
		return err
	}
	r.ex.StatusCode = code
	r.ex.ReasonPhrase = phrase
	return nil
}

// StatusCode returns the raw numeric status code.
func (r *Response) StatusCode() int {
	return r.ex.StatusCode
}

// SetStatusCode sets the raw numeric status code.
func (r *Response) SetStatusCode(code int) {
	r.ex.StatusCode = code
}

// ReasonPhrase returns the explicitly stored phrase when non-empty, else the
// canonical phrase for the current status code ("" for unknown codes).
func (r *Response) ReasonPhrase() string {
	if r.ex.ReasonPhrase != "" {
		return r.ex.ReasonPhrase
	}
	return status.Phrase(r.ex.StatusCode)
}

// SetReasonPhrase stores an explicit reason phrase, overriding synthesis.
func (r *Response) SetReasonPhrase(phrase string) {
	r.ex.ReasonPhrase = phrase
}

// ContentType returns the Content-Type header value, "" when absent.
func (r *Response) ContentType() string {
	return r.ex.Headers.Get(HeaderContentType)
}

// SetContentType sets the Content-Type header as a single value.
func (r *Response) SetContentType(value string) {
	r.ex.Headers.Set(HeaderContentType, value)
}

// ContentLength parses the Content-Length header. An absent or non-numeric
// header fails with ErrContentLength; there is no implicit zero default.
func (r *Response) ContentLength() (int64, error) {
	value := r.ex.Headers.Get(HeaderContentLength)
	if value == "" {
		return 0, fmt.Errorf("%w: header absent", ErrContentLength)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrContentLength, value)
	}
	return n, nil
}

// SetContentLength sets the Content-Length header.
func (r *Response) SetContentLength(n int64) {
	r.ex.Headers.Set(HeaderContentLength, strconv.FormatInt(n, 10))
}

// Header returns the combined single value for name, "" when the header is
// absent. Multiplicity is preserved by Values.
func (r *Response) Header(name string) string {
	return r.ex.Headers.Get(name)
}

// Values returns the raw stored value sequence for name, nil when absent.
func (r *Response) Values(name string) []string {
	return r.ex.Headers.Values(name)
}

// Headers returns the shared header collection.
func (r *Response) Headers() header.Header {
	return r.ex.Headers
}

// SetHeader replaces all values for name with a single value. An empty or
// whitespace-only value removes the header entirely, keyed by name.
func (r *Response) SetHeader(name, value string) {
	r.ex.Headers.Set(name, value)
}

// AddHeader appends a value for name without disturbing existing values.
func (r *Response) AddHeader(name, value string) {
	r.ex.Headers.Add(name, value)
}

// OnSendingHeaders registers a callback to run immediately before the
// hosting layer commits the headers. It fails with
// exchange.ErrHooksUnsupported when the host offers no registration
// mechanism; it never silently no-ops.
func (r *Response) OnSendingHeaders(fn func()) error {
	return r.ex.OnSendingHeaders(fn)
}

package response

import (
	"context"

	"golang.org/x/text/encoding/unicode"

	"github.com/pipeware/pipeware/core/exchange"
)

// Write forwards raw bytes to the exchange's body stream. The façade never
// owns the stream's lifecycle; it only writes to it. Byte-range writes are
// expressed by slicing the input.
func (r *Response) Write(p []byte) (int, error) {
	if r.ex.Body == nil {
		return 0, exchange.ErrNoBody
	}
	return r.ex.Body.Write(p)
}

// WriteString encodes s with the configured text encoding (UTF-8 by default)
// and forwards the encoded bytes to the body stream. The returned count is
// in encoded bytes.
func (r *Response) WriteString(s string) (int, error) {
	p, err := r.encode(s)
	if err != nil {
		return 0, err
	}
	return r.Write(p)
}

// WriteContext is the cancellable variant of Write. An already-cancelled
// context fails immediately with ctx.Err() and writes nothing. When the body
// sink implements exchange.ContextWriter, cancellation is delegated to it;
// otherwise the write runs concurrently and the call returns ctx.Err() on
// cancellation, leaving partial-write state to whatever the sink guarantees.
// Successive writes issued by one handler are observed in issuance order.
func (r *Response) WriteContext(ctx context.Context, p []byte) (int, error) {
	if r.ex.Body == nil {
		return 0, exchange.ErrNoBody
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if cw, ok := r.ex.Body.(exchange.ContextWriter); ok {
		return cw.WriteContext(ctx, p)
	}

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := r.ex.Body.Write(p)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-done:
		return res.n, res.err
	}
}

// WriteStringContext encodes s with the configured text encoding and writes
// it via WriteContext.
func (r *Response) WriteStringContext(ctx context.Context, s string) (int, error) {
	p, err := r.encode(s)
	if err != nil {
		return 0, err
	}
	return r.WriteContext(ctx, p)
}

// encode converts s to bytes using the configured encoding.
func (r *Response) encode(s string) ([]byte, error) {
	enc := r.enc
	if enc == nil {
		enc = unicode.UTF8
	}
	return enc.NewEncoder().Bytes([]byte(s))
}

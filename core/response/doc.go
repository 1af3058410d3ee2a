// Package response exposes structured HTTP response semantics over a shared
// exchange: status line, headers, cookies, content metadata, and body writes.
// The façade is a stateless view; all state lives in the exchange, so every
// mutation is immediately visible to other holders of the same exchange.
//
// # Basic Usage
//
//	ex := exchange.New(sink)
//	resp := response.New(ex)
//
//	if err := resp.SetStatus("404 Not Found"); err != nil {
//		// malformed status line, nothing was mutated
//	}
//	resp.SetContentType("text/html; charset=utf-8")
//	resp.SetCookie("sess", "abc123")
//	_, err := resp.WriteString("<h1>gone</h1>")
//
// # Cancellable Writes
//
// WriteContext and WriteStringContext accept a context and fail with
// ctx.Err() when it is cancelled before or during the write:
//
//	n, err := resp.WriteContext(ctx, payload)
//	if errors.Is(err, context.Canceled) {
//		// nothing or a partial write reached the sink
//	}
//
// # Header Commit
//
// Headers stay mutable until the first body byte is written or the hosting
// layer fires the commit hooks; the façade does not enforce that lifecycle,
// it only registers callbacks via OnSendingHeaders.
package response

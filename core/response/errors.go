package response

import "errors"

var (
	// ErrContentLength indicates the Content-Length header is absent or not
	// numeric. The getter never substitutes a default.
	ErrContentLength = errors.New("invalid or missing Content-Length header")

	// ErrUnknownCharset indicates a charset label that does not resolve to a
	// supported text encoding.
	ErrUnknownCharset = errors.New("unknown charset label")
)

package response

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/pipeware/pipeware/core/exchange"
)

// Config provides environment-based defaults for response façades.
type Config struct {
	// Charset is the IANA label of the text encoding used by string writes.
	Charset string `env:"RESPONSE_CHARSET" envDefault:"utf-8"`
	// DefaultContentType, when set, is applied to exchanges that carry no
	// Content-Type header yet.
	DefaultContentType string `env:"RESPONSE_CONTENT_TYPE" envDefault:""`
}

// DefaultConfig returns a Config with UTF-8 string writes and no implicit
// content type.
func DefaultConfig() Config {
	return Config{
		Charset: "utf-8",
	}
}

// CharsetEncoding resolves an IANA charset label ("utf-8", "iso-8859-1") to
// its encoding. Unknown or unsupported labels fail with ErrUnknownCharset.
func CharsetEncoding(label string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, label)
	}
	return enc, nil
}

// NewFromConfig wraps an exchange in a façade configured from cfg. Explicit
// options override configuration. The default content type is applied only
// when the exchange carries no Content-Type header.
func NewFromConfig(ex *exchange.Exchange, cfg Config, opts ...Option) (*Response, error) {
	configOpts := make([]Option, 0, 1)
	if cfg.Charset != "" {
		enc, err := CharsetEncoding(cfg.Charset)
		if err != nil {
			return nil, err
		}
		configOpts = append(configOpts, WithEncoding(enc))
	}

	r := New(ex, append(configOpts, opts...)...)

	if cfg.DefaultContentType != "" && !ex.Headers.Has(HeaderContentType) {
		r.SetContentType(cfg.DefaultContentType)
	}
	return r, nil
}

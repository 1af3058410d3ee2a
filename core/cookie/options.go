package cookie

import "time"

// Option is a functional option for configuring cookie attributes.
type Option func(*Cookie)

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(c *Cookie) {
		c.Domain = domain
	}
}

// WithPath sets the cookie path attribute. An empty path omits the path
// clause from the serialized form.
func WithPath(path string) Option {
	return func(c *Cookie) {
		c.Path = path
	}
}

// WithExpires sets the cookie expiry timestamp.
func WithExpires(t time.Time) Option {
	return func(c *Cookie) {
		c.Expires = t
	}
}

// WithSecure sets the secure flag, restricting the cookie to HTTPS.
func WithSecure(secure bool) Option {
	return func(c *Cookie) {
		c.Secure = secure
	}
}

// WithHTTPOnly prevents JavaScript access to the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Cookie) {
		c.HttpOnly = httpOnly
	}
}

// applyOptions copies base and applies modifications, leaving the original
// untouched.
func applyOptions(base Cookie, opts []Option) Cookie {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

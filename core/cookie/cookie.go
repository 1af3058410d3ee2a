package cookie

import (
	"net/url"
	"strings"
	"time"
)

// expiresFormat renders expiry timestamps the way browsers expect in the
// legacy Set-Cookie grammar: day-of-week, day-month-year, time, GMT suffix.
const expiresFormat = "Mon, 02-Jan-2006 15:04:05"

// Cookie describes the attributes of one Set-Cookie entry. The name is not
// part of the value object; it is passed separately to the serialization and
// façade operations. Zero-valued fields mean "absent" and their clauses are
// omitted from the serialized form.
type Cookie struct {
	Value    string
	Domain   string
	Path     string
	Expires  time.Time
	Secure   bool
	HttpOnly bool
}

// New creates a cookie with the given value and options. The path defaults
// to "/".
func New(value string, opts ...Option) Cookie {
	c := Cookie{
		Value: value,
		Path:  "/",
	}
	return applyOptions(c, opts)
}

// String serializes the cookie as one Set-Cookie header value for name.
// Clauses appear in fixed order: name=value, domain, path, expires, secure,
// HttpOnly, each present only when the corresponding attribute is set. Name
// and value are URL-encoded; downstream parsers rely on this grammar
// byte-for-byte.
func (c Cookie) String(name string) string {
	var b strings.Builder
	b.WriteString(url.QueryEscape(name))
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(c.Value))
	if c.Domain != "" {
		b.WriteString("; domain=")
		b.WriteString(c.Domain)
	}
	if c.Path != "" {
		b.WriteString("; path=")
		b.WriteString(c.Path)
	}
	if !c.Expires.IsZero() {
		b.WriteString("; expires=")
		b.WriteString(c.Expires.UTC().Format(expiresFormat))
		b.WriteString(" GMT")
	}
	if c.Secure {
		b.WriteString("; secure")
	}
	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	return b.String()
}

// Expired serializes the deletion form of c for name: the value is forced
// empty and the expiry forced to the Unix epoch while domain and path are
// preserved, producing e.g. "sess=; expires=Thu, 01-Jan-1970 00:00:00 GMT".
func Expired(name string, c Cookie) string {
	c.Value = ""
	c.Expires = time.Unix(0, 0)
	return c.String(name)
}

// MatchesName reports whether a serialized Set-Cookie entry belongs to name,
// i.e. begins with "name=", compared case-insensitively.
func MatchesName(entry, name string) bool {
	return strings.HasPrefix(strings.ToLower(entry), strings.ToLower(name)+"=")
}

// MatchesDomain reports whether a serialized entry carries a matching
// "domain=" clause. This is a coarse case-insensitive substring match on the
// serialized value, not a structured comparison.
func MatchesDomain(entry, domain string) bool {
	return strings.Contains(strings.ToLower(entry), "domain="+strings.ToLower(domain))
}

// MatchesPath reports whether a serialized entry carries a matching "path="
// clause, by the same coarse textual match as MatchesDomain.
func MatchesPath(entry, path string) bool {
	return strings.Contains(strings.ToLower(entry), "path="+strings.ToLower(path))
}

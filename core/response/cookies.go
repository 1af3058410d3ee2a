package response

import (
	"net/url"

	"github.com/pipeware/pipeware/core/cookie"
)

// SetCookie appends one Set-Cookie entry of the form
// "name=value; path=/" with name and value URL-encoded.
func (r *Response) SetCookie(name, value string) {
	r.ex.Headers.Add(HeaderSetCookie, url.QueryEscape(name)+"="+url.QueryEscape(value)+"; path=/")
}

// SetCookieWith appends one Set-Cookie entry serialized from the full cookie
// attribute set.
func (r *Response) SetCookieWith(name string, c cookie.Cookie) {
	r.ex.Headers.Add(HeaderSetCookie, c.String(name))
}

// DeleteCookie replaces all existing Set-Cookie entries belonging to name
// (case-insensitive name prefix) with a single expired entry
// "name=; expires=Thu, 01-Jan-1970 00:00:00 GMT". When no Set-Cookie header
// exists it is created with only the expired entry. Entries for other cookie
// names are left untouched.
func (r *Response) DeleteCookie(name string) {
	match := func(entry string) bool {
		return cookie.MatchesName(entry, name)
	}
	r.replaceCookieEntries(match, cookie.Expired(name, cookie.Cookie{}))
}

// DeleteCookieWith narrows the entries removed by DeleteCookie: when c
// carries a domain, only entries for name containing a matching "domain="
// clause are removed; else when it carries a path, only entries containing a
// matching "path=" clause; else all entries for name. The appended expired
// cookie goes through the full serialization path with the expiry forced to
// the Unix epoch, preserving the passed domain and path.
func (r *Response) DeleteCookieWith(name string, c cookie.Cookie) {
	var match func(entry string) bool
	switch {
	case c.Domain != "":
		match = func(entry string) bool {
			return cookie.MatchesName(entry, name) && cookie.MatchesDomain(entry, c.Domain)
		}
	case c.Path != "":
		match = func(entry string) bool {
			return cookie.MatchesName(entry, name) && cookie.MatchesPath(entry, c.Path)
		}
	default:
		match = func(entry string) bool {
			return cookie.MatchesName(entry, name)
		}
	}
	r.replaceCookieEntries(match, cookie.Expired(name, c))
}

// replaceCookieEntries drops matching Set-Cookie entries and appends the
// expired replacement, creating the header when absent.
func (r *Response) replaceCookieEntries(match func(string) bool, expired string) {
	existing := r.ex.Headers.Values(HeaderSetCookie)
	if len(existing) == 0 {
		r.ex.Headers.Add(HeaderSetCookie, expired)
		return
	}

	kept := make([]string, 0, len(existing)+1)
	for _, entry := range existing {
		if !match(entry) {
			kept = append(kept, entry)
		}
	}
	kept = append(kept, expired)
	r.ex.Headers[HeaderSetCookie] = kept
}

// Package cookie models one Set-Cookie entry as a plain value object with
// explicit optional attributes and serializes it into the legacy Set-Cookie
// wire grammar consumed by browsers and proxies.
//
// Cookies are constructed ad hoc per operation and are never persisted beyond
// their serialized header value:
//
//	c := cookie.New("abc123",
//		cookie.WithDomain("example.com"),
//		cookie.WithExpires(time.Now().Add(24*time.Hour)),
//		cookie.WithSecure(true),
//		cookie.WithHTTPOnly(true),
//	)
//	entry := c.String("sess")
//	// sess=abc123; domain=example.com; path=/; expires=...; secure; HttpOnly
//
// Expired produces the deletion form used to clear a cookie on the client:
//
//	cookie.Expired("sess", cookie.Cookie{})
//	// sess=; expires=Thu, 01-Jan-1970 00:00:00 GMT
//
// The Matches helpers perform the coarse textual matching used when filtering
// existing Set-Cookie entries for deletion; they inspect the serialized value
// rather than parsing it structurally.
package cookie

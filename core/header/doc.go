// Package header implements the multi-valued header collection shared by one
// exchange. It preserves value order and multiplicity (HTTP allows repeated
// headers) while offering single-value convenience accessors that never
// silently lose multiplicity.
//
// Basic usage:
//
//	h := header.Header{}
//	h.Add("Set-Cookie", "a=1")
//	h.Add("Set-Cookie", "b=2")
//	h.Values("Set-Cookie") // ["a=1", "b=2"]
//	h.Get("Set-Cookie")    // "a=1,b=2"
//
//	h.Set("X-Frame-Options", "DENY") // replaces all prior values
//	h.Set("X-Frame-Options", "")     // removes the entry
package header

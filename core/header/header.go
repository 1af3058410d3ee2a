package header

import "strings"

// Header is a multi-valued header collection mapping a header name to the
// ordered sequence of values stored for it. Names are stored case-sensitively;
// callers are expected to use canonical names ("Content-Type", "Set-Cookie")
// consistently, which keeps lookups predictable without imposing a
// normalization pass on every operation.
type Header map[string][]string

// Values returns the stored value sequence for name, or nil when the header
// is absent. The returned slice is the live backing slice, not a copy.
func (h Header) Values(name string) []string {
	values, ok := h[name]
	if !ok {
		return nil
	}
	return values
}

// Get returns the single logical value for name: the empty string when the
// header is absent or holds no values, the sole value when it holds exactly
// one, and all values comma-joined in stored order otherwise. A header with
// zero values and one with a single value render identically.
func (h Header) Get(name string) string {
	values := h[name]
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

// Add appends value to the sequence stored for name, creating the entry when
// absent. Existing values are never replaced; repeatable headers such as
// Set-Cookie rely on this.
func (h Header) Add(name, value string) {
	h[name] = append(h[name], value)
}

// Set replaces all values stored for name with the single given value. An
// empty or whitespace-only value is treated as an unset request and removes
// the entry entirely.
func (h Header) Set(name, value string) {
	if strings.TrimSpace(value) == "" {
		delete(h, name)
		return
	}
	h[name] = []string{value}
}

// Has reports whether an entry exists for name, regardless of value count.
func (h Header) Has(name string) bool {
	_, ok := h[name]
	return ok
}

// Del removes the entry for name if present.
func (h Header) Del(name string) {
	delete(h, name)
}

// Clone returns a deep copy of the collection. A nil receiver yields nil.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	clone := make(Header, len(h))
	for name, values := range h {
		clone[name] = append([]string(nil), values...)
	}
	return clone
}

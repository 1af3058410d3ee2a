package exchange

import "fmt"

// Get returns the env value stored at key cast to T. An absent key yields def
// with a nil error. A present value of the wrong dynamic type is a programmer
// error and fails with ErrTypeMismatch rather than masking as absent, so
// "missing" and "wrong shape" stay distinguishable.
func Get[T any](ex *Exchange, key string, def T) (T, error) {
	value, ok := ex.env[key]
	if !ok {
		return def, nil
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: key %q holds %T, want %T", ErrTypeMismatch, key, value, zero)
	}
	return typed, nil
}

// Set stores value at key in the env bag, replacing any prior entry.
func Set(ex *Exchange, key string, value any) {
	ex.env[key] = value
}

// Delete removes key from the env bag if present.
func Delete(ex *Exchange, key string) {
	delete(ex.env, key)
}

// Has reports whether key is present in the env bag, regardless of type.
func Has(ex *Exchange, key string) bool {
	_, ok := ex.env[key]
	return ok
}

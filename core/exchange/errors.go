package exchange

import "errors"

var (
	// ErrTypeMismatch indicates an env value exists at the requested key but
	// has the wrong dynamic type. Surfaced immediately instead of being
	// masked as an absent key.
	ErrTypeMismatch = errors.New("exchange env value has wrong type")

	// ErrHooksUnsupported indicates the hosting layer attached no
	// header-commit hook registry, so callbacks cannot be registered.
	ErrHooksUnsupported = errors.New("exchange host does not support header-commit hooks")

	// ErrNoBody indicates a body write was attempted on an exchange whose
	// host provided no body sink.
	ErrNoBody = errors.New("exchange has no body stream")
)

package exchange

// HookRegistry is the explicit registration list for header-commit callbacks.
// The exchange owns it, façades append to it, and the hosting layer fires it
// exactly once immediately before headers are considered final.
type HookRegistry struct {
	fns   []func()
	fired bool
}

// NewHookRegistry creates an empty registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{}
}

// Register appends a callback. Callbacks registered after the registry has
// fired are never invoked; header mutation past the commit point is undefined
// behavior by contract.
func (r *HookRegistry) Register(fn func()) {
	if fn == nil {
		return
	}
	r.fns = append(r.fns, fn)
}

// Fire invokes the registered callbacks in reverse registration order, so the
// innermost registrant observes headers last. Subsequent calls are no-ops.
func (r *HookRegistry) Fire() {
	if r == nil || r.fired {
		return
	}
	r.fired = true
	for i := len(r.fns) - 1; i >= 0; i-- {
		r.fns[i]()
	}
}

// Fired reports whether the registry has already been invoked.
func (r *HookRegistry) Fired() bool {
	return r != nil && r.fired
}

// Len returns the number of registered callbacks.
func (r *HookRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fns)
}

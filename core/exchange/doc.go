// Package exchange defines the shared per-transaction context that the
// response façade operates on. The exchange replaces a stringly-keyed bag
// with explicit typed fields (status, headers, body sink, commit hooks) while
// keeping a generic env map for interoperating with loosely-typed hosts.
//
// The env accessors distinguish "absent" from "present with the wrong type":
//
//	deadline, err := exchange.Get(ex, "host.Deadline", time.Time{})
//	if errors.Is(err, exchange.ErrTypeMismatch) {
//		// a value exists at the key but is not a time.Time
//	}
//
// Header-commit hooks follow a registration-list model: the façade appends
// callbacks via Exchange.OnSendingHeaders, and the hosting layer invokes
// HookRegistry.Fire exactly once immediately before headers become final.
package exchange

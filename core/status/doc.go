// Package status provides the canonical reason-phrase table and the status
// line grammar used by the response façade. The stored status line form is
// either "<3-digit code>" or "<3-digit code> <reason>"; downstream consumers
// parse these strings per HTTP convention, so the grammar is enforced
// byte-for-byte.
package status

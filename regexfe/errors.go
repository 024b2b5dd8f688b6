// Package regexfe implements the lexical validator, concatenation
// preprocessor, and shunting-yard postfix converter of spec sections 4.1
// and 4.2 — the front end that turns a raw infix regex string into the
// postfix token stream the thompson package consumes.
package regexfe

import "fmt"

// InvalidRegex reports a validation failure (spec section 4.1) at a
// specific position in the raw input, with a human-readable reason.
// Callers are expected to surface Reason directly to users (spec section
// 7: "Callers surface user-facing errors directly with the reason
// string").
type InvalidRegex struct {
	Pos    int
	Reason string
}

// Error implements the error interface.
func (e *InvalidRegex) Error() string {
	return fmt.Sprintf("invalid regex at position %d: %s", e.Pos, e.Reason)
}

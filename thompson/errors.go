// Package thompson implements the Thompson construction of spec section
// 4.4: folding a postfix token stream into an epsilon-NFA via a
// stack-based composition, one operator at a time.
package thompson

import "errors"

// ErrMalformedPostfix indicates the postfix token stream underflowed the
// construction stack (an operator with too few operands) or left more
// than one automaton on the stack at the end (spec section 4.4 / section
// 7). In normal operation this should never happen, since
// regexfe.CompileToPostfix only ever produces well-formed postfix from a
// validated regex; it is reported as a bug, not a user-facing error (spec
// section 7).
var ErrMalformedPostfix = errors.New("malformed postfix token stream")

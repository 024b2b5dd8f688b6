package regexfe

import (
	"fmt"
	"strings"
)

// operatorChars are the operator characters of spec section 4.1, plus the
// internal concatenation marker '&'. '&' is never valid in raw user input
// (spec section 9's open question, resolved: the implicit concatenation
// marker and the raw alphabet must not collide), but it is still
// recognized here so validation can report a precise reason rather than a
// generic "invalid character".
const operatorChars = "|*()&"

// Config controls validator behavior. It mirrors the teacher corpus's
// small-config-struct-with-defaults shape (coregx-coregex
// nfa.CompilerConfig) even though, for this restricted grammar, there is
// only one knob worth exposing.
type Config struct {
	// ForbidAmpersand rejects raw '&' as a reserved character (the
	// specification's resolution of its own open question). Defaults to
	// true; present mainly so an implementer inheriting data that already
	// uses '&' for something else has a documented escape hatch.
	ForbidAmpersand bool
}

// DefaultConfig returns the specification-conformant validator
// configuration.
func DefaultConfig() Config {
	return Config{ForbidAmpersand: true}
}

func isSymbolChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isOperatorChar(c byte) bool {
	return strings.IndexByte(operatorChars, c) >= 0
}

// Validate checks expr against the restricted grammar of spec section 4.1
// using the default configuration. It returns *InvalidRegex on the first
// violation found, scanning left to right.
func Validate(expr string) error {
	return ValidateConfig(expr, DefaultConfig())
}

// ValidateConfig is Validate with an explicit Config.
func ValidateConfig(expr string, cfg Config) error {
	if len(expr) == 0 {
		// V1 (spec section 8): either behavior is acceptable; this
		// implementation rejects directly for a clearer caller-facing error.
		return &InvalidRegex{Pos: 0, Reason: "empty expression"}
	}

	var parenStack []int

	for i := 0; i < len(expr); i++ {
		c := expr[i]

		if !isSymbolChar(c) && !isOperatorChar(c) {
			return &InvalidRegex{Pos: i, Reason: fmt.Sprintf("invalid character %q", c)}
		}
		if cfg.ForbidAmpersand && c == '&' {
			return &InvalidRegex{Pos: i, Reason: "reserved concatenation operator"}
		}

		switch c {
		case '(':
			parenStack = append(parenStack, i)
		case ')':
			if len(parenStack) == 0 {
				return &InvalidRegex{Pos: i, Reason: "closing parenthesis without matching open"}
			}
			parenStack = parenStack[:len(parenStack)-1]
		case '|':
			if i == 0 || i == len(expr)-1 {
				return &InvalidRegex{Pos: i, Reason: "union operator in invalid position"}
			}
			if next := expr[i+1]; next == '|' || next == '*' || next == '&' {
				return &InvalidRegex{Pos: i, Reason: "union operator followed by another operator"}
			}
		case '*':
			if i == 0 {
				return &InvalidRegex{Pos: i, Reason: "Kleene star in invalid position"}
			}
			if i+1 < len(expr) {
				if next := expr[i+1]; next == '|' || next == '*' || next == '&' {
					return &InvalidRegex{Pos: i, Reason: "Kleene star followed by another operator"}
				}
			}
		}
	}

	if len(parenStack) > 0 {
		return &InvalidRegex{Pos: parenStack[len(parenStack)-1], Reason: "unclosed parenthesis"}
	}

	return nil
}

// Package fsm is the root package of automatonkit: it exposes the four
// external operations of spec section 6 as plain functions over
// automaton.Automaton values, plus Pipeline, a convenience composition of
// all four for callers that just want "regex in, DFA out".
//
// automatonkit implements the classical pipeline
//
//	regex → postfix → ε-NFA → NFA (ε-free) → DFA
//
// as a synchronous library (spec section 5): no operation blocks, yields,
// or is cancellable, and every transformation is a pure function of its
// input automaton. The interactive drawing surface, graph rendering, and
// window/menu plumbing that might sit on top of this are out of scope
// (spec section 1) and are not implemented here — this package's job ends
// at producing an Automaton a collaborator can render.
//
// Example:
//
//	dfa, err := fsm.Pipeline("(a|b)*abb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dfa.ToExport())
package fsm

import (
	"github.com/coregx/automatonkit/automaton"
	"github.com/coregx/automatonkit/regexfe"
	"github.com/coregx/automatonkit/thompson"
)

// ValidateAndCompile validates a raw infix regex and converts it to
// postfix (spec section 6: `validate_and_compile`). Implicit concatenation
// markers are inserted; the recognized grammar is `| * ( )` plus letters
// and digits.
func ValidateAndCompile(regex string) (string, error) {
	return regexfe.CompileToPostfix(regex)
}

// BuildFromPostfix folds a postfix token stream into an epsilon-NFA via
// Thompson construction (spec section 6: `build_from_postfix`).
func BuildFromPostfix(tokens string) (*automaton.Automaton, error) {
	return thompson.Build(tokens)
}

// RemoveEpsilons rewrites an epsilon-NFA into an equivalent automaton
// without lambda transitions (spec section 6: `remove_epsilons`).
func RemoveEpsilons(m *automaton.Automaton) (*automaton.Automaton, error) {
	return automaton.RemoveEpsilons(m)
}

// SubsetConstruct produces a deterministic automaton from an NFA, NFA
// lambda transitions tolerated via closures (spec section 6:
// `subset_construct`).
func SubsetConstruct(m *automaton.Automaton) (*automaton.Automaton, error) {
	return automaton.SubsetConstruct(m)
}

// Pipeline runs all four stages in order: validate_and_compile,
// build_from_postfix, remove_epsilons, subset_construct. It is the
// one-call convenience path most callers want; each stage remains
// independently usable for callers that need to inspect an intermediate
// automaton (e.g. the CLI's --stage=enfa / --stage=nfa output).
func Pipeline(regex string) (*automaton.Automaton, error) {
	postfix, err := ValidateAndCompile(regex)
	if err != nil {
		return nil, err
	}
	epsNFA, err := BuildFromPostfix(postfix)
	if err != nil {
		return nil, err
	}
	nfa, err := RemoveEpsilons(epsNFA)
	if err != nil {
		return nil, err
	}
	return SubsetConstruct(nfa)
}

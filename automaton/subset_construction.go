package automaton

import "strings"

// DefaultMaxDFAStates bounds the number of composite states SubsetConstruct
// will materialize before giving up. Subset construction is worst-case
// exponential in the source automaton's state count (spec section 5); this
// cap turns runaway memory growth into a reported error instead, the same
// shape as the teacher's meta.Config.MaxDFAStates guard over lazy-DFA
// determinization.
const DefaultMaxDFAStates = 1 << 16

// compositeID returns the canonical identifier of a composite (subset)
// state: "{" + lexicographically-sorted member ids, comma-joined + "}"
// (spec section 4.7). Sorting guarantees equal sets produce equal ids
// regardless of discovery order.
func compositeID(set StateSet) string {
	return "{" + strings.Join(set.Sorted(), ",") + "}"
}

// SubsetConstruct runs the standard powerset construction (spec section
// 4.7) over m, which may be an NFA or an epsilon-NFA: residual lambda
// transitions are tolerated because every composite state is built from an
// epsilon-closure. The result is canonically renamed before being
// returned, so composite-state encodings never escape to callers.
//
// It fails with a *StateError wrapping ErrNoStartState if m has no start
// state, and with a *LimitError wrapping ErrStateLimitExceeded if
// DefaultMaxDFAStates composite states are exceeded.
func SubsetConstruct(m *Automaton) (*Automaton, error) {
	return SubsetConstructLimit(m, DefaultMaxDFAStates)
}

// SubsetConstructLimit is SubsetConstruct with an explicit composite-state
// cap, used by callers (chiefly cmd/automatonctl, passing
// config.Config.MaxDFAStates) that want a different bound than
// DefaultMaxDFAStates.
func SubsetConstructLimit(m *Automaton, maxStates int) (*Automaton, error) {
	startID, ok := m.Start()
	if !ok {
		return nil, &StateError{Err: ErrNoStartState}
	}

	out := New()
	processed := make(map[string]StateSet)
	var queue []string

	s0 := m.epsilonClosureFrom(startID)
	id0 := compositeID(s0)
	if _, err := out.AddState(id0, anyAccepting(m, s0)); err != nil {
		return nil, err
	}
	if err := out.SetStart(id0); err != nil {
		return nil, err
	}
	processed[id0] = s0
	queue = append(queue, id0)

	for len(queue) > 0 {
		curID := queue[0]
		queue = queue[1:]
		cur := processed[curID]

		bySymbol := make(map[rune]StateSet)
		for member := range cur {
			st := m.states[member]
			for _, sym := range st.Symbols() {
				if sym == Lambda {
					continue
				}
				targets := bySymbol[sym]
				if targets == nil {
					targets = newStateSet(2)
					bySymbol[sym] = targets
				}
				for _, dst := range st.transitions[sym] {
					targets.Add(dst)
				}
			}
		}

		for sym, targets := range bySymbol {
			closure := m.EpsilonClosureSet(targets)
			if closure.Len() == 0 {
				continue
			}
			tID := compositeID(closure)
			if _, seen := processed[tID]; !seen {
				if len(processed) >= maxStates {
					return nil, &LimitError{Limit: maxStates, Err: ErrStateLimitExceeded}
				}
				if _, err := out.AddState(tID, anyAccepting(m, closure)); err != nil {
					return nil, err
				}
				processed[tID] = closure
				queue = append(queue, tID)
			}
			if err := out.AddTransition(curID, sym, tID); err != nil {
				return nil, err
			}
		}
	}

	return Rename(out)
}

func anyAccepting(m *Automaton, set StateSet) bool {
	for id := range set {
		if m.states[id].accepting {
			return true
		}
	}
	return false
}

package automaton

import "fmt"

// Rename returns a new automaton identical to m except that every state id
// has been replaced by q0, q1, ..., q(n-1): q0 is always the start state,
// and the remaining ids are assigned in m's insertion order (spec section
// 4.8). After Rename, invariant I4 holds.
//
// Rename never mutates m. If m has no start state and is non-empty, Rename
// returns a *StateError wrapping ErrNoStartState, since "start-first" order
// is undefined without one; an empty automaton renames to an empty
// automaton.
func Rename(m *Automaton) (*Automaton, error) {
	if m.Len() == 0 {
		return New(), nil
	}
	start, ok := m.Start()
	if !ok {
		return nil, &StateError{Err: ErrNoStartState}
	}

	ordered := make([]string, 0, m.Len())
	ordered = append(ordered, start)
	for _, id := range m.order {
		if id != start {
			ordered = append(ordered, id)
		}
	}

	newID := make(map[string]string, len(ordered))
	for i, id := range ordered {
		newID[id] = fmt.Sprintf("q%d", i)
	}

	out := New()
	for _, id := range ordered {
		s := m.states[id]
		if _, err := out.AddState(newID[id], s.accepting); err != nil {
			return nil, err
		}
	}
	if err := out.SetStart(newID[start]); err != nil {
		return nil, err
	}
	for _, id := range ordered {
		s := m.states[id]
		for sym, dsts := range s.transitions {
			for _, dst := range dsts {
				if err := out.AddTransition(newID[id], sym, newID[dst]); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

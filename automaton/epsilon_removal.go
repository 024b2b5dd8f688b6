package automaton

// RemoveEpsilons transforms an epsilon-NFA m into an equivalent automaton
// m' with the same state ids and start state but no lambda transitions
// (spec section 4.6). For every state p, letting C = Eclose(p):
//
//   - p is accepting in m' iff any state in C is accepting.
//   - for every non-lambda symbol sigma reachable from any q in C, m' gets
//     an edge p --sigma--> r' for every r' in Eclose(r), for every r that
//     some q in C reaches on sigma.
//
// RemoveEpsilons is a pure function of m: m is never mutated, and the
// result is a freshly allocated automaton. It fails with a *StateError
// wrapping ErrNoStartState if m has a non-empty state set but no start
// state, since every other public transformation requires one.
func RemoveEpsilons(m *Automaton) (*Automaton, error) {
	out := New()

	if m.Len() > 0 {
		if _, ok := m.Start(); !ok {
			return nil, &StateError{Err: ErrNoStartState}
		}
	}

	closures := make(map[string]StateSet, m.Len())
	for _, p := range m.States() {
		closures[p.ID()] = m.epsilonClosureFrom(p.ID())
	}

	for _, p := range m.States() {
		accepting := false
		for member := range closures[p.ID()] {
			if m.states[member].accepting {
				accepting = true
				break
			}
		}
		if _, err := out.AddState(p.ID(), accepting); err != nil {
			return nil, err
		}
	}

	if start, ok := m.Start(); ok {
		if err := out.SetStart(start); err != nil {
			return nil, err
		}
	}

	for _, p := range m.States() {
		for member := range closures[p.ID()] {
			q := m.states[member]
			for _, sym := range q.Symbols() {
				if sym == Lambda {
					continue
				}
				for _, r := range q.transitions[sym] {
					for rPrime := range closures[r] {
						if err := out.AddTransition(p.ID(), sym, rPrime); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return out, nil
}

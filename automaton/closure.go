package automaton

import "sort"

// StateSet is an unordered set of state ids, as produced by EpsilonClosure.
type StateSet map[string]struct{}

// newStateSet returns an empty StateSet pre-sized for n elements.
func newStateSet(n int) StateSet {
	return make(StateSet, n)
}

// Contains reports whether id is a member of the set.
func (s StateSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s StateSet) Add(id string) {
	s[id] = struct{}{}
}

// Len returns the number of members.
func (s StateSet) Len() int { return len(s) }

// Sorted returns the set's members as a lexicographically sorted slice.
// This is the canonical member ordering used by the subset constructor's
// composite-state encoding (spec section 4.7).
func (s StateSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// EpsilonClosure computes Eclose(id): the least set containing id and
// closed under the lambda-transition relation (spec section 4.5). It is an
// iterative depth-first search over the lambda-edge graph, tracking a
// visited set, so cycles (Kleene star, arbitrary user-drawn automata) are
// handled without special-casing.
//
// It fails with a *StateError wrapping ErrUnknownState if id is absent.
func (a *Automaton) EpsilonClosure(id string) (StateSet, error) {
	if _, ok := a.states[id]; !ok {
		return nil, &StateError{ID: id, Err: ErrUnknownState}
	}
	return a.epsilonClosureFrom(id), nil
}

// epsilonClosureFrom is the unchecked core of EpsilonClosure, used
// internally (e.g. by ε-removal and subset construction) once an id is
// already known to be valid.
func (a *Automaton) epsilonClosureFrom(id string) StateSet {
	closure := newStateSet(4)
	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if closure.Contains(cur) {
			continue
		}
		closure.Add(cur)
		for _, next := range a.states[cur].transitions[Lambda] {
			if !closure.Contains(next) {
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// EpsilonClosureSet computes Eclose(S) = union of Eclose(s) for s in ids
// (spec section 4.5). Unknown ids are skipped rather than erroring, since
// callers (ε-removal, subset construction) build ids from transitions
// already known to be valid members of this automaton.
func (a *Automaton) EpsilonClosureSet(ids StateSet) StateSet {
	closure := newStateSet(ids.Len())
	for id := range ids {
		if _, ok := a.states[id]; !ok {
			continue
		}
		for member := range a.epsilonClosureFrom(id) {
			closure.Add(member)
		}
	}
	return closure
}

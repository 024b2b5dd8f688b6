// Package automaton implements the data model of spec section 3: states
// with immutable identity, labeled multi-valued transitions, and an
// automaton that owns its states and names one of them as the start.
//
// It also hosts the transformations that operate purely on that model:
// epsilon-closure (section 4.5), epsilon-removal (section 4.6), subset
// construction (section 4.7), and canonical renaming (section 4.8). These
// are kept in one package, rather than split further, because they share
// the same invariants (I1-I5) and the same small surface of accessors —
// splitting them would just mean re-exporting the same few methods from
// three packages.
//
// States are never mutated or destroyed in place by a transformation: each
// of RemoveEpsilons, SubsetConstruct, and Rename returns a freshly allocated
// Automaton, leaving the input untouched. This mirrors the arena-of-states
// shape used throughout the corpus (compact, cycle-safe, renumber-by-copy)
// rather than a graph of pointer-linked, mutually-owning state objects.
package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// Lambda is the distinguished empty-transition symbol, written λ in the
// specification and in exported diagrams.
const Lambda rune = 'λ'

// State is a single state of an Automaton: an identifier, an accepting
// flag, and its outgoing transitions. A State's identifier is fixed for
// its lifetime; transformations that need a different id allocate a new
// State rather than renaming this one in place.
type State struct {
	id         string
	accepting  bool
	transitions map[rune][]string
}

// ID returns the state's identifier, unique within its owning Automaton.
func (s *State) ID() string { return s.id }

// Accepting reports whether this is an accepting (final) state.
func (s *State) Accepting() bool { return s.accepting }

// Symbols returns the symbols (including Lambda) that have at least one
// outgoing transition from this state. Order is unspecified.
func (s *State) Symbols() []rune {
	syms := make([]rune, 0, len(s.transitions))
	for sym := range s.transitions {
		syms = append(syms, sym)
	}
	return syms
}

// TransitionsFor returns the ordered, possibly-duplicating list of
// destination state ids reachable from s on the given symbol. The
// returned slice is a copy; mutating it does not affect s.
func (s *State) TransitionsFor(sym rune) []string {
	dsts := s.transitions[sym]
	if len(dsts) == 0 {
		return nil
	}
	out := make([]string, len(dsts))
	copy(out, dsts)
	return out
}

func (s *State) addTransition(sym rune, dst string) {
	s.transitions[sym] = append(s.transitions[sym], dst)
}

// String returns a human-readable one-line summary of the state, in the
// style of coregx-coregex's nfa.State.String(): id, accepting flag, and
// how many distinct symbols carry outgoing transitions.
func (s *State) String() string {
	if s.accepting {
		return fmt.Sprintf("State(%s, accepting, %d transitions)", s.id, len(s.transitions))
	}
	return fmt.Sprintf("State(%s, %d transitions)", s.id, len(s.transitions))
}

// Automaton is a finite automaton value per spec section 3: a mapping from
// identifier to state (insertion order preserved, because the canonical
// renamer depends on it) plus at most one designated start state.
type Automaton struct {
	states map[string]*State
	order  []string
	start  string
	hasStart bool
}

// New returns an empty automaton with no states and no start state.
func New() *Automaton {
	return &Automaton{
		states: make(map[string]*State),
	}
}

// AddState creates a new state with the given id and accepting flag and
// adds it to the automaton. It fails with a *StateError wrapping
// ErrDuplicateState if id is already present (invariant I2).
func (a *Automaton) AddState(id string, accepting bool) (*State, error) {
	if _, exists := a.states[id]; exists {
		return nil, &StateError{ID: id, Err: ErrDuplicateState}
	}
	s := &State{
		id:          id,
		accepting:   accepting,
		transitions: make(map[rune][]string),
	}
	a.states[id] = s
	a.order = append(a.order, id)
	return s, nil
}

// SetStart designates id as the automaton's start state. It fails with a
// *StateError wrapping ErrUnknownState if id is not present.
func (a *Automaton) SetStart(id string) error {
	if _, exists := a.states[id]; !exists {
		return &StateError{ID: id, Err: ErrUnknownState}
	}
	a.start = id
	a.hasStart = true
	return nil
}

// AddTransition adds an edge src --sym--> dst. It fails with a *StateError
// wrapping ErrUnknownState if either endpoint is absent (invariant I1).
// Repeated calls with the same (src, sym, dst) are tolerated and simply
// duplicate the destination entry; duplicates carry no additional meaning
// (spec section 3: the destination collection is semantically a set).
func (a *Automaton) AddTransition(src string, sym rune, dst string) error {
	from, ok := a.states[src]
	if !ok {
		return &StateError{ID: src, Err: ErrUnknownState}
	}
	if _, ok := a.states[dst]; !ok {
		return &StateError{ID: dst, Err: ErrUnknownState}
	}
	from.addTransition(sym, dst)
	return nil
}

// Start returns the start state's id and whether one has been set.
func (a *Automaton) Start() (string, bool) {
	return a.start, a.hasStart
}

// Get returns the state with the given id, if present.
func (a *Automaton) Get(id string) (*State, bool) {
	s, ok := a.states[id]
	return s, ok
}

// States returns the automaton's states in insertion order. The returned
// slice is freshly allocated; the *State values themselves are shared and
// must not be mutated by callers outside this package.
func (a *Automaton) States() []*State {
	out := make([]*State, len(a.order))
	for i, id := range a.order {
		out[i] = a.states[id]
	}
	return out
}

// Len returns the number of states in the automaton.
func (a *Automaton) Len() int { return len(a.order) }

// String returns a multi-line human-readable dump of the automaton: its
// states, start state, and transition relation, in the style of
// dsonic0912-PolicyReporter-FSM's FiniteAutomaton.String(). It exists for
// test failure output and CLI diagnostics, not for parsing.
func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Automaton(%d states):\n", len(a.order))
	if a.hasStart {
		fmt.Fprintf(&sb, "  start: %s\n", a.start)
	} else {
		sb.WriteString("  start: <none>\n")
	}
	for _, id := range a.order {
		s := a.states[id]
		fmt.Fprintf(&sb, "  %s", id)
		if s.accepting {
			sb.WriteString(" (accepting)")
		}
		sb.WriteString("\n")
		for _, sym := range sortedSymbols(s) {
			for _, dst := range s.transitions[sym] {
				fmt.Fprintf(&sb, "    --%c--> %s\n", sym, dst)
			}
		}
	}
	return sb.String()
}

// GoString implements fmt.GoStringer so "%#v" on an Automaton prints the
// same readable dump as String() rather than the unexported-field struct
// literal Go's default %#v would otherwise produce.
func (a *Automaton) GoString() string {
	return a.String()
}

func sortedSymbols(s *State) []rune {
	syms := s.Symbols()
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

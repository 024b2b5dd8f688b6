package thompson

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/coregx/automatonkit/automaton"
)

// Build folds a postfix token stream into an epsilon-NFA (spec section
// 4.4, the `build_from_postfix` operation of section 6). Tokens are
// processed left to right over an internal stack of automata:
//
//   - a symbol allocates a two-state automaton a --sym--> b;
//   - '&' pops two automata and concatenates them;
//   - '|' pops two automata and unions them;
//   - '*' pops one automaton and applies Kleene closure.
//
// Every token other than '&', '|', '*' is treated as an alphabet symbol,
// matching the postfix alphabet produced by regexfe.CompileToPostfix. If
// the stack underflows, or more than one automaton remains once the
// stream is exhausted, Build returns ErrMalformedPostfix.
func Build(postfix string) (*automaton.Automaton, error) {
	b := &builder{}
	var stack []*automaton.Automaton

	for _, tok := range postfix {
		switch tok {
		case '&':
			if len(stack) < 2 {
				return nil, ErrMalformedPostfix
			}
			n2, n1 := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			merged, err := concatenate(n1, n2)
			if err != nil {
				return nil, err
			}
			stack = append(stack, merged)

		case '|':
			if len(stack) < 2 {
				return nil, ErrMalformedPostfix
			}
			n2, n1 := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			merged, err := union(n1, n2)
			if err != nil {
				return nil, err
			}
			stack = append(stack, merged)

		case '*':
			if len(stack) < 1 {
				return nil, ErrMalformedPostfix
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			starred, err := star(n)
			if err != nil {
				return nil, err
			}
			stack = append(stack, starred)

		default:
			sym, err := b.symbol(tok)
			if err != nil {
				return nil, err
			}
			stack = append(stack, sym)
		}
	}

	if len(stack) != 1 {
		return nil, ErrMalformedPostfix
	}
	return automaton.Rename(stack[0])
}

// builder supplies fresh, collision-free identifiers for the states of a
// single symbol automaton. Its counter is unrelated to the uuid scratch
// ids used during merges (concatenate/union): those only need to
// be unique for the lifetime of one merge step, while a symbol automaton's
// ids need to be stable long enough to be referenced by subsequent merges
// until the next canonical rename.
type builder struct {
	counter int
}

func (b *builder) freshID() string {
	id := fmt.Sprintf("t%d", b.counter)
	b.counter++
	return id
}

// symbol builds the two-state automaton a --sym--> b for a single
// alphabet symbol (spec section 4.4, the symbol case).
func (b *builder) symbol(sym rune) (*automaton.Automaton, error) {
	a := automaton.New()
	start := b.freshID()
	accept := b.freshID()
	if _, err := a.AddState(start, false); err != nil {
		return nil, err
	}
	if _, err := a.AddState(accept, true); err != nil {
		return nil, err
	}
	if err := a.SetStart(start); err != nil {
		return nil, err
	}
	if err := a.AddTransition(start, sym, accept); err != nil {
		return nil, err
	}
	return a, nil
}

// copyInto copies every state and transition of src into dst under fresh,
// globally-unique ids, applying acceptOverride to each state's original
// accepting flag. It returns the old-id -> new-id mapping. This is the
// merge-time "re-identify to avoid collision" step spec section 4.4 leaves
// unspecified: a fresh uuid as scratch id is as good as any other unique
// id, since the canonical renamer erases it before the result is ever
// observable.
func copyInto(dst *automaton.Automaton, src *automaton.Automaton, acceptOverride func(bool) bool) (map[string]string, error) {
	ids := make(map[string]string, src.Len())
	for _, s := range src.States() {
		ids[s.ID()] = uuid.NewString()
	}
	for _, s := range src.States() {
		if _, err := dst.AddState(ids[s.ID()], acceptOverride(s.Accepting())); err != nil {
			return nil, err
		}
	}
	for _, s := range src.States() {
		for _, sym := range s.Symbols() {
			for _, d := range s.TransitionsFor(sym) {
				if err := dst.AddTransition(ids[s.ID()], sym, ids[d]); err != nil {
					return nil, err
				}
			}
		}
	}
	return ids, nil
}

func keepAccepting(accepting bool) bool { return accepting }
func clearAccepting(bool) bool          { return false }

// concatenate implements the '&' case of spec section 4.4: n1's accepting
// states stop being accepting and instead gain a lambda edge to n2's
// start; n2's accepting states remain accepting; the start state is n1's
// start. The result is canonically renamed before being returned, as the
// specification requires for this case.
func concatenate(n1, n2 *automaton.Automaton) (*automaton.Automaton, error) {
	merged := automaton.New()

	map1, err := copyInto(merged, n1, clearAccepting)
	if err != nil {
		return nil, err
	}
	map2, err := copyInto(merged, n2, keepAccepting)
	if err != nil {
		return nil, err
	}

	n1Start, ok := n1.Start()
	if !ok {
		return nil, &automaton.StateError{Err: automaton.ErrNoStartState}
	}
	n2Start, ok := n2.Start()
	if !ok {
		return nil, &automaton.StateError{Err: automaton.ErrNoStartState}
	}

	if err := merged.SetStart(map1[n1Start]); err != nil {
		return nil, err
	}
	for _, s := range n1.States() {
		if s.Accepting() {
			if err := merged.AddTransition(map1[s.ID()], automaton.Lambda, map2[n2Start]); err != nil {
				return nil, err
			}
		}
	}

	return automaton.Rename(merged)
}

// union implements the '|' case of spec section 4.4: a fresh start state
// gains lambda edges to both operands' starts; both operands' accepting
// flags are preserved as-is. The result is canonically renamed before
// being returned.
func union(n1, n2 *automaton.Automaton) (*automaton.Automaton, error) {
	merged := automaton.New()

	map1, err := copyInto(merged, n1, keepAccepting)
	if err != nil {
		return nil, err
	}
	map2, err := copyInto(merged, n2, keepAccepting)
	if err != nil {
		return nil, err
	}

	n1Start, ok := n1.Start()
	if !ok {
		return nil, &automaton.StateError{Err: automaton.ErrNoStartState}
	}
	n2Start, ok := n2.Start()
	if !ok {
		return nil, &automaton.StateError{Err: automaton.ErrNoStartState}
	}

	freshStart := uuid.NewString()
	if _, err := merged.AddState(freshStart, false); err != nil {
		return nil, err
	}
	if err := merged.SetStart(freshStart); err != nil {
		return nil, err
	}
	if err := merged.AddTransition(freshStart, automaton.Lambda, map1[n1Start]); err != nil {
		return nil, err
	}
	if err := merged.AddTransition(freshStart, automaton.Lambda, map2[n2Start]); err != nil {
		return nil, err
	}

	return automaton.Rename(merged)
}

// star implements the '*' case of spec section 4.4: every accepting state
// of n gains a lambda edge back to n's start, and n's start becomes
// accepting (admitting the empty string). Unlike concat and union, this
// step augments a single automaton rather than merging two, so it keeps
// n's existing ids rather than re-identifying anything; the specification
// does not call for a canonical rename here (only the top-level Build
// guarantees one, at the very end).
func star(n *automaton.Automaton) (*automaton.Automaton, error) {
	nStart, ok := n.Start()
	if !ok {
		return nil, &automaton.StateError{Err: automaton.ErrNoStartState}
	}

	starred := automaton.New()
	for _, s := range n.States() {
		accepting := s.Accepting() || s.ID() == nStart
		if _, err := starred.AddState(s.ID(), accepting); err != nil {
			return nil, err
		}
	}
	if err := starred.SetStart(nStart); err != nil {
		return nil, err
	}
	for _, s := range n.States() {
		for _, sym := range s.Symbols() {
			for _, d := range s.TransitionsFor(sym) {
				if err := starred.AddTransition(s.ID(), sym, d); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, s := range n.States() {
		if s.Accepting() {
			if err := starred.AddTransition(s.ID(), automaton.Lambda, nStart); err != nil {
				return nil, err
			}
		}
	}

	return starred, nil
}

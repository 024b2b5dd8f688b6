package automaton

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// StateExport is one state in the collaborator-facing export format
// (spec section 6): an id and whether it is accepting.
type StateExport struct {
	ID        string `yaml:"id"`
	Accepting bool   `yaml:"accepting"`
}

// EdgeExport is one transition in the export format: source, symbol
// (rendered as a string so Lambda prints as "λ"), and destination.
type EdgeExport struct {
	Src string `yaml:"src"`
	Sym string `yaml:"sym"`
	Dst string `yaml:"dst"`
}

// Export is the collaborator-facing presentation of an automaton (spec
// section 6): an ordered list of states, an ordered list of edges, and the
// start id. No bit-exact wire format is mandated by the specification; this
// is one concrete, swappable realization, marshaled with goccy/go-yaml for
// the rendering collaborator.
type Export struct {
	States []StateExport `yaml:"states"`
	Edges  []EdgeExport  `yaml:"edges"`
	Start  string        `yaml:"start"`
}

// ToExport converts m into its Export presentation. States and edges are
// listed in m's insertion order, then per-state symbol order, which is
// stable for a given m but not otherwise meaningful.
func (a *Automaton) ToExport() Export {
	exp := Export{}
	if start, ok := a.Start(); ok {
		exp.Start = start
	}
	for _, s := range a.States() {
		exp.States = append(exp.States, StateExport{ID: s.ID(), Accepting: s.Accepting()})
		for _, sym := range sortedSymbols(s) {
			for _, dst := range s.TransitionsFor(sym) {
				exp.Edges = append(exp.Edges, EdgeExport{
					Src: s.ID(),
					Sym: string(sym),
					Dst: dst,
				})
			}
		}
	}
	return exp
}

// YAML renders the export format as YAML, the format the CLI and
// rendering collaborators consume.
func (e Export) YAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// FromExport rebuilds an Automaton from its Export presentation, via the
// public AddState/AddTransition/SetStart surface. This is the import half
// of the export format: a collaborator that hand-authors (or hand-edits)
// a states/edges/start description — rather than compiling one from a
// regex — feeds it in through here. A single-character Sym of "λ" is
// read back as Lambda; any other multi-rune Sym is rejected, since the
// data model only ever carries single-symbol transitions.
func FromExport(exp Export) (*Automaton, error) {
	a := New()
	for _, se := range exp.States {
		if _, err := a.AddState(se.ID, se.Accepting); err != nil {
			return nil, err
		}
	}
	for _, ee := range exp.Edges {
		sym, err := decodeSymbol(ee.Sym)
		if err != nil {
			return nil, err
		}
		if err := a.AddTransition(ee.Src, sym, ee.Dst); err != nil {
			return nil, err
		}
	}
	if exp.Start != "" {
		if err := a.SetStart(exp.Start); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ParseYAML parses a states/edges/start YAML description (the format
// YAML() produces) into an Automaton. This is how a hand-authored NFA or
// ε-NFA description file is ingested: a collaborator who draws an
// automaton by hand writes it down in this format instead of running it
// through regexfe/thompson.
func ParseYAML(body []byte) (*Automaton, error) {
	var exp Export
	if err := yaml.Unmarshal(body, &exp); err != nil {
		return nil, err
	}
	return FromExport(exp)
}

func decodeSymbol(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid transition symbol %q: must be exactly one rune", s)
	}
	return runes[0], nil
}

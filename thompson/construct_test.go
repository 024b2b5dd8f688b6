package thompson

import (
	"testing"

	"github.com/coregx/automatonkit/automaton"
	"github.com/coregx/automatonkit/regexfe"
)

// accepts is a private test-only acceptance walk over an epsilon-NFA,
// used to check the language-preservation properties of spec section 8
// (L1-L3) without exposing execution/simulation as part of the public
// API (spec section 1's non-goals exclude that as a public operation).
func accepts(t *testing.T, m *automaton.Automaton, input string) bool {
	t.Helper()
	start, ok := m.Start()
	if !ok {
		t.Fatal("automaton has no start state")
	}
	cur, err := m.EpsilonClosure(start)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range input {
		next := make(automaton.StateSet)
		for id := range cur {
			s, _ := m.Get(id)
			for _, dst := range s.TransitionsFor(r) {
				next[dst] = struct{}{}
			}
		}
		cur = m.EpsilonClosureSet(next)
	}
	for id := range cur {
		s, _ := m.Get(id)
		if s.Accepting() {
			return true
		}
	}
	return false
}

func buildAndCheck(t *testing.T, regex string, accept, reject []string) {
	t.Helper()
	postfix, err := regexfe.CompileToPostfix(regex)
	if err != nil {
		t.Fatalf("CompileToPostfix(%q): %v", regex, err)
	}
	nfa, err := Build(postfix)
	if err != nil {
		t.Fatalf("Build(%q): %v", postfix, err)
	}
	for _, w := range accept {
		if !accepts(t, nfa, w) {
			t.Errorf("regex %q: expected to accept %q", regex, w)
		}
	}
	for _, w := range reject {
		if accepts(t, nfa, w) {
			t.Errorf("regex %q: expected to reject %q", regex, w)
		}
	}
}

func TestBuildSingleSymbol(t *testing.T) {
	// S1
	buildAndCheck(t, "a", []string{"a"}, []string{"", "b", "aa"})
}

func TestBuildUnion(t *testing.T) {
	// S2
	buildAndCheck(t, "a|b", []string{"a", "b"}, []string{"", "ab", "c"})
}

func TestBuildConcatenation(t *testing.T) {
	// S3
	buildAndCheck(t, "ab", []string{"ab"}, []string{"a", "b", "", "aba"})
}

func TestBuildKleeneStar(t *testing.T) {
	// S4: accepts {a}^* including empty string.
	buildAndCheck(t, "a*", []string{"", "a", "aa", "aaa"}, []string{"b", "ab"})
}

func TestBuildComplexScenario(t *testing.T) {
	// S5: (a|b)*abb
	buildAndCheck(t, "(a|b)*abb",
		[]string{"abb", "aabb", "babb", "ababb"},
		[]string{"ab", "abba", "bb", ""})
}

func TestBuildCanonicalIDs(t *testing.T) {
	postfix, err := regexfe.CompileToPostfix("a|b")
	if err != nil {
		t.Fatal(err)
	}
	nfa, err := Build(postfix)
	if err != nil {
		t.Fatal(err)
	}
	start, ok := nfa.Start()
	if !ok || start != "q0" {
		t.Errorf("Start() = (%q, %v), want (q0, true)", start, ok)
	}
}

func TestBuildMalformedPostfixUnderflow(t *testing.T) {
	if _, err := Build("a&"); err == nil {
		t.Error("Build(\"a&\") should fail: concatenation with only one operand")
	}
}

func TestBuildMalformedPostfixExcessResidue(t *testing.T) {
	if _, err := Build("ab"); err == nil {
		t.Error("Build(\"ab\") should fail: two automata left on the stack")
	}
}

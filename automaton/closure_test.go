package automaton

import "testing"

// buildCyclicLambda builds q0 -λ-> q1 -λ-> q2 -λ-> q0, with q2 accepting,
// to exercise closure C1-C3 over a cycle (spec section 8, properties
// C1-C3; spec section 9's note that states form graphs with cycles).
func buildCyclicLambda(t *testing.T) *Automaton {
	t.Helper()
	a := New()
	a.AddState("q0", false)
	a.AddState("q1", false)
	a.AddState("q2", true)
	a.AddTransition("q0", Lambda, "q1")
	a.AddTransition("q1", Lambda, "q2")
	a.AddTransition("q2", Lambda, "q0")
	return a
}

func TestEpsilonClosureContainsSelf(t *testing.T) {
	a := buildCyclicLambda(t)
	c, err := a.EpsilonClosure("q0")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Contains("q0") {
		t.Error("Eclose(q0) does not contain q0")
	}
}

func TestEpsilonClosureFollowsCycle(t *testing.T) {
	a := buildCyclicLambda(t)
	c, err := a.EpsilonClosure("q0")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"q0", "q1", "q2"} {
		if !c.Contains(want) {
			t.Errorf("Eclose(q0) missing %q, got %v", want, c.Sorted())
		}
	}
}

func TestEpsilonClosureSubsetProperty(t *testing.T) {
	// C2: if t in Eclose(s) then Eclose(t) subset-of Eclose(s).
	a := buildCyclicLambda(t)
	es, _ := a.EpsilonClosure("q0")
	for member := range es {
		et, err := a.EpsilonClosure(member)
		if err != nil {
			t.Fatal(err)
		}
		for m := range et {
			if !es.Contains(m) {
				t.Errorf("Eclose(%q) = %v not subset of Eclose(q0) = %v", member, et.Sorted(), es.Sorted())
			}
		}
	}
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	// C3: Eclose(Eclose(S)) == Eclose(S).
	a := buildCyclicLambda(t)
	s0, _ := a.EpsilonClosure("q0")
	twice := a.EpsilonClosureSet(s0)
	if s0.Len() != twice.Len() {
		t.Fatalf("Eclose(Eclose(S)) has %d members, Eclose(S) has %d", twice.Len(), s0.Len())
	}
	for m := range s0 {
		if !twice.Contains(m) {
			t.Errorf("Eclose(Eclose(S)) missing %q", m)
		}
	}
}

func TestEpsilonClosureUnknownState(t *testing.T) {
	a := New()
	a.AddState("q0", false)
	if _, err := a.EpsilonClosure("nope"); err == nil {
		t.Error("expected error for unknown state, got nil")
	}
}

func TestEpsilonClosureSetUnion(t *testing.T) {
	a := New()
	a.AddState("q0", false)
	a.AddState("q1", true)
	a.AddState("q2", true)
	a.AddTransition("q0", Lambda, "q1")

	set := newStateSet(2)
	set.Add("q0")
	set.Add("q2")
	union := a.EpsilonClosureSet(set)
	for _, want := range []string{"q0", "q1", "q2"} {
		if !union.Contains(want) {
			t.Errorf("EpsilonClosureSet missing %q, got %v", want, union.Sorted())
		}
	}
}

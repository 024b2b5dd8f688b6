package automaton

import (
	"strings"
	"testing"
)

func TestToExportBasic(t *testing.T) {
	a := New()
	a.AddState("q0", false)
	a.AddState("q1", true)
	a.SetStart("q0")
	a.AddTransition("q0", 'a', "q1")

	exp := a.ToExport()
	if exp.Start != "q0" {
		t.Errorf("Start = %q, want q0", exp.Start)
	}
	if len(exp.States) != 2 {
		t.Fatalf("len(States) = %d, want 2", len(exp.States))
	}
	if len(exp.Edges) != 1 {
		t.Fatalf("len(Edges) = %d, want 1", len(exp.Edges))
	}
	edge := exp.Edges[0]
	if edge.Src != "q0" || edge.Sym != "a" || edge.Dst != "q1" {
		t.Errorf("edge = %+v, want {q0 a q1}", edge)
	}
}

func TestToExportRendersLambda(t *testing.T) {
	a := New()
	a.AddState("q0", false)
	a.AddState("q1", true)
	a.SetStart("q0")
	a.AddTransition("q0", Lambda, "q1")

	exp := a.ToExport()
	if exp.Edges[0].Sym != "λ" {
		t.Errorf("Sym = %q, want λ", exp.Edges[0].Sym)
	}
}

func TestExportYAMLIncludesStart(t *testing.T) {
	a := New()
	a.AddState("q0", true)
	a.SetStart("q0")

	out, err := a.ToExport().YAML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "start: q0") {
		t.Errorf("YAML output missing start field: %s", out)
	}
}

func TestParseYAMLRoundTrips(t *testing.T) {
	a := New()
	a.AddState("q0", false)
	a.AddState("q1", true)
	a.SetStart("q0")
	a.AddTransition("q0", 'a', "q1")
	a.AddTransition("q1", Lambda, "q0")

	body, err := a.ToExport().YAML()
	if err != nil {
		t.Fatal(err)
	}

	got, err := ParseYAML(body)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if start, ok := got.Start(); !ok || start != "q0" {
		t.Errorf("Start() = (%q, %v), want (q0, true)", start, ok)
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	q0, ok := got.Get("q0")
	if !ok || q0.Accepting() {
		t.Errorf("q0: ok=%v accepting=%v, want present and non-accepting", ok, q0.Accepting())
	}
	if dsts := q0.TransitionsFor('a'); len(dsts) != 1 || dsts[0] != "q1" {
		t.Errorf("q0 --a--> %v, want [q1]", dsts)
	}
	q1, ok := got.Get("q1")
	if !ok || !q1.Accepting() {
		t.Errorf("q1: ok=%v accepting=%v, want present and accepting", ok, q1.Accepting())
	}
	if dsts := q1.TransitionsFor(Lambda); len(dsts) != 1 || dsts[0] != "q0" {
		t.Errorf("q1 --λ--> %v, want [q0]", dsts)
	}
}

func TestParseYAMLRejectsMultiRuneSymbol(t *testing.T) {
	body := []byte("states:\n  - id: q0\n    accepting: false\n  - id: q1\n    accepting: true\nedges:\n  - src: q0\n    sym: ab\n    dst: q1\nstart: q0\n")
	if _, err := ParseYAML(body); err == nil {
		t.Error("ParseYAML with multi-rune sym should fail")
	}
}

func TestParseYAMLUnknownStateInEdge(t *testing.T) {
	body := []byte("states:\n  - id: q0\n    accepting: true\nedges:\n  - src: q0\n    sym: a\n    dst: missing\nstart: q0\n")
	if _, err := ParseYAML(body); err == nil {
		t.Error("ParseYAML with unknown edge endpoint should fail")
	}
}

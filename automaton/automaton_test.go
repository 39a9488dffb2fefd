package automaton

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStateSetOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	S := NewStateSet("q10", "q2", "q1", "p3", "q2")
	if S.Size() != 4 {
		t.Errorf("expected set to contain 4 names, has %d", S.Size())
	}
	if S.String() != "{p3, q1, q2, q10}" {
		t.Errorf("expected natural order of names, have %s", S)
	}
	S.Remove("q2")
	S.Remove("q99")
	if S.Contains("q2") || S.Size() != 3 {
		t.Errorf("expected q2 to be removed, set is %s", S)
	}
	var N *StateSet
	if N.Size() != 0 || N.Contains("q1") || N.Values() != nil {
		t.Errorf("expected nil set to behave like an empty set")
	}
}

func TestStateSetLeadingZeros(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	S := NewStateSet("q1", "q01")
	if S.Size() != 2 {
		t.Errorf("expected q1 and q01 to be distinct names, set is %s", S)
	}
}

func TestStateSetUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	S := NewStateSet("q1")
	S.Union(NewStateSet("q2", "q3"))
	if !S.Equals(NewStateSet("q3", "q2", "q1")) {
		t.Errorf("expected union to be {q1, q2, q3}, is %s", S)
	}
	C := S.Copy()
	C.Add("q4")
	if S.Contains("q4") {
		t.Errorf("copy of set shares storage with original")
	}
}

func TestTransitionsInsertOrUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	trans := NewTransitions().Add('a', "q2").Add(Epsilon, "q3").Add(Epsilon, "q4", "q3")
	if trans.Size() != 2 {
		t.Errorf("expected 2 symbols, have %d", trans.Size())
	}
	if eps := trans.Destinations(Epsilon); !eps.Equals(NewStateSet("q3", "q4")) {
		t.Errorf("expected ε-destinations {q3, q4}, have %s", eps)
	}
	if trans.String() != "{ε: {q3, q4}, a: {q2}}" {
		t.Errorf("unexpected transitions string %s", trans)
	}
	var empty *Transitions
	if empty.Size() != 0 || empty.Has('a') || empty.String() != "{}" {
		t.Errorf("expected nil transitions to behave like empty transitions")
	}
}

func TestAddStateOverwrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	nfa := New()
	nfa.AddState("q1", NewTransitions().Add('a', "q2"), false)
	nfa.AddState("q2", nil, true)
	nfa.AddState("q1", NewTransitions().Add('b', "q2"), false)
	trans, ok := nfa.Transitions("q1")
	if !ok {
		t.Fatalf("state q1 not found")
	}
	if trans.Has('a') || !trans.Has('b') {
		t.Errorf("expected re-added state to have its transitions replaced, has %s", trans)
	}
	if nfa.Size() != 2 {
		t.Errorf("expected 2 states, have %d", nfa.Size())
	}
	if s := strings.Join(nfa.States(), ","); s != "q1,q2" {
		t.Errorf("expected states in insertion order, have %s", s)
	}
}

func TestFinalStatesAdditive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	nfa := New()
	nfa.AddState("q1", nil, true)
	nfa.AddState("q1", nil, false)
	if !nfa.IsFinal("q1") {
		t.Errorf("expected q1 to stay final after re-adding it as non-final")
	}
	nfa.RemoveFinalState("q1")
	nfa.RemoveFinalState("q7") // no-op
	if nfa.IsFinal("q1") || len(nfa.FinalStates()) != 0 {
		t.Errorf("expected no final states, have %v", nfa.FinalStates())
	}
}

func TestStartStateNotValidated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	nfa := New()
	if _, ok := nfa.Start(); ok {
		t.Errorf("expected new automaton to have no start state")
	}
	nfa.SetStartState("q1")
	nfa.SetStartState("q9")
	if s, ok := nfa.Start(); !ok || s != "q9" {
		t.Errorf("expected start state to be overwritten to q9, is %s", s)
	}
	if err := nfa.Validate(); !errors.Is(err, ErrDanglingState) {
		t.Errorf("expected non-existent start state to be reported, error is %v", err)
	}
}

func TestInsertedTransitionsAreCopied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	shared := NewTransitions().Add('a', "q2")
	nfa := New()
	nfa.AddState("q1", shared, false)
	nfa.AddState("q3", shared, false)
	nfa.AddState("q2", nil, true)
	if err := nfa.AddEpsilon("q1", "q3"); err != nil {
		t.Fatal(err)
	}
	trans, _ := nfa.Transitions("q3")
	if trans.Has(Epsilon) {
		t.Errorf("ε-transition of q1 leaked into q3")
	}
	if shared.Has(Epsilon) {
		t.Errorf("ε-transition of q1 leaked into caller's transition map")
	}
}

func TestAddEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	nfa := New()
	nfa.AddState("q1", nil, false)
	nfa.AddState("q2", nil, false)
	nfa.AddState("q3", nil, false)
	nfa.AddEpsilon("q1", "q2")
	nfa.AddEpsilon("q1", "q3")
	trans, _ := nfa.Transitions("q1")
	if eps := trans.Destinations(Epsilon); !eps.Equals(NewStateSet("q2", "q3")) {
		t.Errorf("expected ε-destinations to be united, have %s", eps)
	}
	if err := nfa.AddEpsilon("q4", "q1"); !errors.Is(err, ErrDanglingState) {
		t.Errorf("expected error for ε-transition from non-existent state, have %v", err)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	nfa := New()
	nfa.AddState("q1", NewTransitions().Add('a', "q2"), false)
	if err := nfa.Validate(); !errors.Is(err, ErrDanglingState) {
		t.Errorf("expected dangling destination q2 to be reported, error is %v", err)
	}
	nfa.AddState("q2", nil, true)
	nfa.SetStartState("q1")
	if err := nfa.Validate(); err != nil {
		t.Errorf("expected automaton to be valid, error is %v", err)
	}
}

func TestZeroValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	var S StateSet
	if !S.Empty() || S.Contains("q1") {
		t.Errorf("expected zero set to be empty")
	}
	S.Add("q2", "q1")
	if S.Size() != 2 || S.Empty() {
		t.Errorf("expected zero set to be usable, is %s", &S)
	}
	var U StateSet
	U.Union(NewStateSet("q3"))
	if !U.Equals(NewStateSet("q3")) {
		t.Errorf("expected union into zero set to be {q3}, is %s", &U)
	}
	var tr Transitions
	tr.Add('a', "q2").Add('a', "q3").Add(Epsilon, "q1")
	if tr.Size() != 2 || tr.String() != "{ε: {q1}, a: {q2, q3}}" {
		t.Errorf("expected zero transitions to be usable, have %s", &tr)
	}
}

func TestSymbols(t *testing.T) {
	if !Epsilon.IsEpsilon() || Symbol('a').IsEpsilon() || Symbol('ε').IsEpsilon() {
		t.Errorf("expected only Epsilon to be the epsilon-symbol")
	}
	if Epsilon.String() != "ε" || Symbol('ä').String() != "ä" {
		t.Errorf("unexpected symbol strings %s, %s", Epsilon, Symbol('ä'))
	}
}

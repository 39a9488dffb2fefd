package automaton

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDFARejectsEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	dfa := NewDFA()
	err := dfa.AddState("q1", NewTransitions().Add(Epsilon, "q2"), false)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ε-transition to be rejected, error is %v", err)
	}
	if len(dfa.States()) != 0 {
		t.Errorf("expected rejected state not to be inserted")
	}
}

func TestDFARejectsMultipleDestinations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	dfa := NewDFA()
	err := dfa.AddState("q1", NewTransitions().Add('a', "q2", "q3"), true)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected non-scalar destination to be rejected, error is %v", err)
	}
	if dfa.IsFinal("q1") {
		t.Errorf("expected rejected state not to become final")
	}
	err = dfa.AddState("q1", NewTransitions().Add('a'), false)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected empty destination set to be rejected, error is %v", err)
	}
}

func TestDFAAcceptsDeterministicForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	dfa := NewDFA()
	if err := dfa.AddDeterministicState("q1", map[Symbol]string{'a': "q2", 'b': "q1"}, false); err != nil {
		t.Fatal(err)
	}
	if err := dfa.AddState("q2", nil, true); err != nil {
		t.Fatal(err)
	}
	dfa.SetStartState("q1")
	if to, ok := dfa.Delta("q1", 'a'); !ok || to != "q2" {
		t.Errorf("expected δ(q1,a) = q2, is %q", to)
	}
	if to, ok := dfa.Delta("q1", 'b'); !ok || to != "q1" {
		t.Errorf("expected δ(q1,b) = q1, is %q", to)
	}
	if _, ok := dfa.Delta("q2", 'a'); ok {
		t.Errorf("expected δ(q2,a) to be undefined")
	}
	if err := dfa.Validate(); err != nil {
		t.Error(err)
	}
	if s, _ := dfa.Start(); s != "q1" || !dfa.IsFinal("q2") {
		t.Errorf("unexpected DFA:\n%s", dfa)
	}
}

func TestStateAdderContract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.automaton")
	defer teardown()
	//
	trans := NewTransitions().Add(Epsilon, "q1", "q2")
	for _, target := range []struct {
		name  string
		adder StateAdder
		fails bool
	}{
		{name: "NFA", adder: New(), fails: false},
		{name: "DFA", adder: NewDFA(), fails: true},
	} {
		err := target.adder.AddState("q0", trans, false)
		if (err != nil) != target.fails {
			t.Errorf("%s: unexpected result of AddState: %v", target.name, err)
		}
	}
}

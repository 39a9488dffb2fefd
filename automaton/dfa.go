package automaton

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidTransition is returned by DFA.AddState for transitions which are not
// in deterministic form.
var ErrInvalidTransition = errors.New("invalid transition for deterministic automaton")

// StateAdder is the state-insertion contract shared by NFA and DFA.
type StateAdder interface {
	AddState(name string, trans *Transitions, isFinal bool) error
}

var _ StateAdder = (*NFA)(nil)
var _ StateAdder = (*DFA)(nil)

// DFA is an automaton in deterministic form: there are no epsilon-transitions and
// every symbol leads to exactly one destination state. DFA does not construct
// anything; it rejects state insertions violating deterministic form.
type DFA struct {
	nfa *NFA
}

// NewDFA creates an empty deterministic automaton.
func NewDFA() *DFA {
	return &DFA{nfa: New()}
}

// AddState inserts a state, with the same overwrite-semantics as NFA.AddState.
// It returns an error wrapping ErrInvalidTransition if trans contains
// an epsilon-transition or a symbol with not exactly one destination.
// In this case the automaton is left unchanged.
func (dfa *DFA) AddState(name string, trans *Transitions, isFinal bool) error {
	for _, sym := range trans.Symbols() {
		if sym.IsEpsilon() {
			tracer().Errorf("DFA cannot have ε-transitions, state %s", name)
			return fmt.Errorf("%w: state %s has ε-transitions", ErrInvalidTransition, name)
		}
		if n := trans.m[sym].Size(); n != 1 {
			tracer().Errorf("DFA transitions must lead to a single state, state %s", name)
			return fmt.Errorf("%w: state %s has %d destinations for %s",
				ErrInvalidTransition, name, n, sym)
		}
	}
	return dfa.nfa.AddState(name, trans, isFinal)
}

// AddDeterministicState is a convenience variant of AddState, receiving
// a single destination per symbol.
func (dfa *DFA) AddDeterministicState(name string, delta map[Symbol]string, isFinal bool) error {
	trans := NewTransitions()
	for sym, to := range delta {
		trans.Add(sym, to)
	}
	return dfa.AddState(name, trans, isFinal)
}

// Delta returns the destination of state name for symbol sym.
func (dfa *DFA) Delta(name string, sym Symbol) (string, bool) {
	t, ok := dfa.nfa.transitions(name)
	if !ok || t.m[sym].Empty() {
		return "", false
	}
	return t.m[sym].Values()[0], true
}

// SetStartState sets the start state, see NFA.SetStartState.
func (dfa *DFA) SetStartState(name string) {
	dfa.nfa.SetStartState(name)
}

// RemoveFinalState removes a name from the set of final states, see NFA.RemoveFinalState.
func (dfa *DFA) RemoveFinalState(name string) {
	dfa.nfa.RemoveFinalState(name)
}

// Start returns the name of the start state, if it is set.
func (dfa *DFA) Start() (string, bool) {
	return dfa.nfa.Start()
}

// IsFinal is a predicate.
func (dfa *DFA) IsFinal(name string) bool {
	return dfa.nfa.IsFinal(name)
}

// FinalStates returns the names of the final states in order.
func (dfa *DFA) FinalStates() []string {
	return dfa.nfa.FinalStates()
}

// States returns all state names, in the order of first insertion.
func (dfa *DFA) States() []string {
	return dfa.nfa.States()
}

// Validate checks for dangling state references, see NFA.Validate.
func (dfa *DFA) Validate() error {
	return dfa.nfa.Validate()
}

// Dump writes a textual representation to w, see NFA.Dump.
func (dfa *DFA) Dump(w io.Writer) error {
	return dfa.nfa.Dump(w)
}

func (dfa *DFA) String() string {
	return dfa.nfa.String()
}

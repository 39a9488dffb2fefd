package automaton

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/exp/slices"
)

// ErrDanglingState is returned if a state name is referenced, but no state of
// this name exists in an automaton.
var ErrDanglingState = errors.New("reference to non-existent state")

// --- Transitions -----------------------------------------------------------

// Transitions is the transition map of a single state: for every symbol it
// holds a set of destination state names. Transitions are owned by exactly one
// state; automata copy them on insertion.
//
// The zero value is an empty transition map, ready to use. A nil *Transitions is
// a valid empty transition map for all read operations.
type Transitions struct {
	m map[Symbol]*StateSet
}

// NewTransitions creates an empty transition map.
func NewTransitions() *Transitions {
	return &Transitions{m: make(map[Symbol]*StateSet)}
}

// Add inserts destinations for a symbol. If the symbol is already present, the
// destinations are united with the existing ones.
// Returns the transition map (for chaining).
func (t *Transitions) Add(sym Symbol, dest ...string) *Transitions {
	if t.m == nil {
		t.m = make(map[Symbol]*StateSet)
	}
	if S, ok := t.m[sym]; ok {
		S.Add(dest...)
		return t
	}
	t.m[sym] = NewStateSet(dest...)
	return t
}

// Destinations returns a copy of the destination set for a symbol, or nil.
func (t *Transitions) Destinations(sym Symbol) *StateSet {
	if t == nil {
		return nil
	}
	if S, ok := t.m[sym]; ok {
		return S.Copy()
	}
	return nil
}

// Has is a predicate: are there transitions for symbol sym?
func (t *Transitions) Has(sym Symbol) bool {
	if t == nil {
		return false
	}
	_, ok := t.m[sym]
	return ok
}

// Symbols returns all symbols with transitions, in ascending order. Epsilon,
// if present, is the first one.
func (t *Transitions) Symbols() []Symbol {
	if t == nil {
		return nil
	}
	syms := make([]Symbol, 0, len(t.m))
	for sym := range t.m {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	return syms
}

// Size returns the number of symbols with transitions.
func (t *Transitions) Size() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}

// Copy creates a deep copy of a transition map, sharing no sets with t.
func (t *Transitions) Copy() *Transitions {
	c := NewTransitions()
	if t == nil {
		return c
	}
	for sym, S := range t.m {
		c.m[sym] = S.Copy()
	}
	return c
}

func (t *Transitions) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, sym := range t.Symbols() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s: %s", sym, t.m[sym]))
	}
	b.WriteString("}")
	return b.String()
}

// --- Automaton -------------------------------------------------------------

// NFA is a non-deterministic finite automaton with epsilon-transitions.
// It owns a mapping from state names to transition maps (kept in insertion
// order), an optional start state and a set of final states.
//
// Every name appearing as a transition destination, as the start state or
// in the set of final states is expected to have an entry in the state mapping.
// Use Validate to check this.
type NFA struct {
	states   *linkedhashmap.Map // name -> *Transitions
	start    string
	hasStart bool
	finals   *StateSet
}

// New creates an empty automaton, without a start state and with no final states.
func New() *NFA {
	return &NFA{
		states: linkedhashmap.New(),
		finals: NewStateSet(),
	}
}

// AddState inserts a state. If a state with this name exists, its transitions are
// overwritten (not merged!). If isFinal is true, the name is added to the set of
// final states. A later call with isFinal=false will not remove it from the set.
//
// The automaton stores a copy of trans. AddState of type NFA never returns an error;
// the error return is part of the contract shared with DFA.
func (nfa *NFA) AddState(name string, trans *Transitions, isFinal bool) error {
	tracer().Debugf("add state %s: %v, final=%v", name, trans, isFinal)
	nfa.states.Put(name, trans.Copy())
	if isFinal {
		nfa.finals.Add(name)
	}
	return nil
}

// AddEpsilon adds destinations to the epsilon-transitions of state from. Existing
// epsilon-destinations are kept. State from must exist.
func (nfa *NFA) AddEpsilon(from string, to ...string) error {
	t, ok := nfa.transitions(from)
	if !ok {
		return fmt.Errorf("%w: cannot add ε-transition from %s", ErrDanglingState, from)
	}
	t.Add(Epsilon, to...)
	tracer().Debugf("add ε-transition %s -> %v", from, to)
	return nil
}

// SetStartState sets the start state, overwriting a previous one. The state's
// existence is not checked.
func (nfa *NFA) SetStartState(name string) {
	nfa.start = name
	nfa.hasStart = true
}

// RemoveFinalState removes a name from the set of final states. If the name is
// not in the set, this is a no-op.
func (nfa *NFA) RemoveFinalState(name string) {
	nfa.finals.Remove(name)
}

// Start returns the name of the start state, if it is set.
func (nfa *NFA) Start() (string, bool) {
	return nfa.start, nfa.hasStart
}

// IsFinal is a predicate.
func (nfa *NFA) IsFinal(name string) bool {
	return nfa.finals.Contains(name)
}

// FinalStates returns the names of the final states in order.
func (nfa *NFA) FinalStates() []string {
	return nfa.finals.Values()
}

// HasState is a predicate.
func (nfa *NFA) HasState(name string) bool {
	_, ok := nfa.states.Get(name)
	return ok
}

// States returns all state names, in the order of first insertion.
func (nfa *NFA) States() []string {
	names := make([]string, 0, nfa.states.Size())
	for _, k := range nfa.states.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Size returns the number of states.
func (nfa *NFA) Size() int {
	return nfa.states.Size()
}

// Transitions returns a copy of the transition map of a state.
func (nfa *NFA) Transitions(name string) (*Transitions, bool) {
	t, ok := nfa.transitions(name)
	if !ok {
		return nil, false
	}
	return t.Copy(), true
}

// Each iterates over all states in order of insertion, calling a mapper function.
// The mapper must not modify the transitions.
func (nfa *NFA) Each(mapper func(name string, trans *Transitions)) {
	it := nfa.states.Iterator()
	for it.Next() {
		mapper(it.Key().(string), it.Value().(*Transitions))
	}
}

// Validate checks that all state names referenced by transitions, the start state
// and the final states exist in the automaton.
func (nfa *NFA) Validate() error {
	var err error
	nfa.Each(func(name string, trans *Transitions) {
		if err != nil {
			return
		}
		for _, sym := range trans.Symbols() {
			for _, to := range trans.m[sym].Values() {
				if !nfa.HasState(to) {
					err = fmt.Errorf("%w: %s -%s-> %s", ErrDanglingState, name, sym, to)
					return
				}
			}
		}
	})
	if err != nil {
		return err
	}
	if nfa.hasStart && !nfa.HasState(nfa.start) {
		return fmt.Errorf("%w: start state %s", ErrDanglingState, nfa.start)
	}
	for _, f := range nfa.finals.Values() {
		if !nfa.HasState(f) {
			return fmt.Errorf("%w: final state %s", ErrDanglingState, f)
		}
	}
	return nil
}

func (nfa *NFA) transitions(name string) (*Transitions, bool) {
	v, ok := nfa.states.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Transitions), true
}

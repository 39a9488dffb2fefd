/*
Package automaton implements epsilon-NFAs as mutable graphs of named states.

Every state carries a transition map from a symbol (a literal rune or the
distinguished Epsilon symbol) to a set of destination state names.
Being final is not a property of a state, but membership in the automaton-level
set of final states.

    nfa := automaton.New()
    nfa.AddState("q1", automaton.NewTransitions().Add('a', "q2"), false)
    nfa.AddState("q2", nil, true)
    nfa.SetStartState("q1")
    nfa.Dump(os.Stdout)

    // Output:
    q1: {a: {q2}}
    q2: {}
    Start state: q1
    Final states: {q2}

Type DFA is a thin validating wrapper. It accepts only transitions
without epsilon-symbols and with exactly one destination per symbol. It does not
construct deterministic automata from non-deterministic ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.automaton")
}

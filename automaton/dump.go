package automaton

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
)

// Dump writes a textual representation of an automaton to w: one line for every
// state with its transitions (in order of insertion), followed by the start state
// and the set of final states.
//
//	q1: {a: {q2}}
//	q2: {}
//	Start state: q1
//	Final states: {q2}
func (nfa *NFA) Dump(w io.Writer) error {
	var b bytes.Buffer
	nfa.Each(func(name string, trans *Transitions) {
		b.WriteString(fmt.Sprintf("%s: %s\n", name, trans))
	})
	if start, ok := nfa.Start(); ok {
		b.WriteString(fmt.Sprintf("Start state: %s\n", start))
	} else {
		b.WriteString("Start state: <none>\n")
	}
	b.WriteString(fmt.Sprintf("Final states: %s\n", nfa.finals))
	_, err := w.Write(b.Bytes())
	return err
}

func (nfa *NFA) String() string {
	var b bytes.Buffer
	nfa.Dump(&b)
	return b.String()
}

// ToGraphViz exports an automaton to the Graphviz Dot format.
// Final states are drawn as double circles, the start state receives an
// incoming arrow from an invisible point.
func (nfa *NFA) ToGraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(`digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	if start, ok := nfa.Start(); ok {
		b.WriteString("__start [shape=point]\n")
		b.WriteString(fmt.Sprintf("__start -> %s\n", dotID(start)))
	}
	nfa.Each(func(name string, trans *Transitions) {
		b.WriteString(fmt.Sprintf("%s [shape=%s label=\"%s\"]\n", dotID(name), nodeshape(nfa, name),
			dotEscape(name)))
	})
	nfa.Each(func(name string, trans *Transitions) {
		for _, sym := range trans.Symbols() {
			for _, to := range trans.m[sym].Values() {
				b.WriteString(fmt.Sprintf("%s -> %s [label=\"%s\"]\n", dotID(name), dotID(to),
					dotEscape(sym.String())))
			}
		}
	})
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodeshape(nfa *NFA, name string) string {
	if nfa.IsFinal(name) {
		return "doublecircle"
	}
	return "circle"
}

func dotID(name string) string {
	return "\"" + dotEscape(name) + "\""
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// --- Fingerprints ----------------------------------------------------------

// Fingerprint returns a structural hash of an automaton. Automata with equal
// states, transitions, start state and final states have equal fingerprints,
// independent of the order of state insertion.
func (nfa *NFA) Fingerprint() (string, error) {
	return structhash.Hash(nfa.snapshot(), 1)
}

// canonical, order-independent representation of an automaton, used for hashing
type snapshot struct {
	States []stateSnapshot
	Start  string
	Finals []string
}

type stateSnapshot struct {
	Name  string
	Edges []edgeSnapshot
}

type edgeSnapshot struct {
	Symbol  int32
	Targets []string
}

func (nfa *NFA) snapshot() snapshot {
	names := nfa.States()
	sortNames(names)
	snap := snapshot{
		States: make([]stateSnapshot, 0, len(names)),
		Finals: nfa.FinalStates(),
	}
	if start, ok := nfa.Start(); ok {
		snap.Start = start
	}
	for _, name := range names {
		trans, _ := nfa.transitions(name)
		st := stateSnapshot{Name: name}
		for _, sym := range trans.Symbols() {
			st.Edges = append(st.Edges, edgeSnapshot{
				Symbol:  int32(sym),
				Targets: trans.m[sym].Values(),
			})
		}
		snap.States = append(snap.States, st)
	}
	return snap
}

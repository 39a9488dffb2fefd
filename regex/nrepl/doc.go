/*
Package nrepl/main provides an interactive command line tool (N.REPL)
for converting regular expressions into epsilon-NFAs. N.REPL serves as a
sandbox for experiments with Thompson's construction: every line entered
is converted and the resulting automaton is printed. Automata may be
exported in GraphViz DOT format for visual inspection.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.nrepl'
func tracer() tracing.Trace {
	return tracing.Select("thompson.nrepl")
}

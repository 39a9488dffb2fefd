/*
Package plexer provides a tokenizer for regular expressions built on the
lexer of participle.

Participle's simple lexer is defined by a list of named rules, each a Go regular
expression. Rules are tried in order, with a catch-all rule last, so every input
rune results in a token. Rule names are mapped to token types of package scanner.

	tokenizer, err := plexer.Tokenizer("(a|a.b)*")
	if err != nil {
		// do error handling
	}

The tokenizer implements the scanner.Tokenizer interface.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package plexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.scanner")
}

/*
Package regex converts regular expressions into epsilon-NFAs, using Thompson's
construction.

Expression Syntax

Literals are letters and numeric characters (Unicode categories L and N,
e.g. "a", "ä", "7", "²" or "Ⅻ"). Operators are

    a.b     concatenation (explicit, there is no implicit concatenation)
    a|b     alternation
    a*      Kleene star (postfix)
    (a)     grouping

Other characters are ignored, unless the converter is in strict mode.

Construction

The converter scans an expression from left to right. Every literal creates a
fragment of two states, connected by a transition labeled with the literal.
Operators and opening parentheses are pushed onto an operator stack. A closing
parenthesis pops and applies operators until the matching opening parenthesis is
found. At the end of input, all remaining operators are applied.

Operators are applied in stack order (last pushed, first applied). There is no
precedence between operators other than what parentheses impose. Please note that
this means that for

    a.b|c

alternation is applied before concatenation, i.e. the expression is read as a.(b|c).
Clients wanting the conventional reading (a.b)|c may either use parentheses or
switch on option Precedence(true), which binds '*' tighter than '.', and '.' tighter
than '|'.

Usage

    nfa, err := regex.Convert("(a|a.b)*")
    if err != nil {
        // err wraps regex.ErrMalformedExpression
    }
    nfa.Dump(os.Stdout)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.regex'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.regex")
}

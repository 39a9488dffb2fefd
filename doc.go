/*
Package thompson converts regular expressions into epsilon-NFAs,
using Thompson's construction.

The expression syntax is deliberately small: literals are letters and numbers,
'.' is an explicit concatenation operator, '|' denotes alternation and '*' is a
postfix Kleene star. Parentheses group sub-expressions. There is no implicit
concatenation, i.e. writers have to put '.' between adjacent operands.

Package structure is as follows:

■ automaton: Package automaton implements epsilon-NFAs as mutable graphs of named states,
together with a validating deterministic sub-type and diagnostic dumps.

■ regex: Package regex implements the converter, scanning an expression and assembling
automaton fragments on an operand stack.

■ regex/scanner: Package scanner defines an interface for tokenizing expressions, with
a default implementation. Sub-packages lexmach and plexer provide tokenizers based on
lexmachine and on the lexer of participle.

■ regex/nrepl: N.REPL is an interactive command line tool for converting expressions
and exporting the resulting automata.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package thompson

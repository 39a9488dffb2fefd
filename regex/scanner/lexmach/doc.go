/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
tokenizing regular expressions.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The adapter compiles a lexer for the expression alphabet once. Lexmachine works on
bytes; ASCII letters and digits, operators and parentheses are recognized by
lexmachine patterns. Input lexmachine cannot consume (e.g., non-ASCII letters)
is decoded as a single rune and categorized by scanner.Categorize, so both
tokenizers produce identical token streams.

	LM, err := lexmach.NewLMAdapter()
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete expression.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("(a|a.b)*")
	if err != nil {
		// do error handling
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

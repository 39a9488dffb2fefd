package thompson

import "fmt"

// --- Tokens of regular expressions -----------------------------------------

// TokType is a category type for a Token. Tokenizers and the converter agree on
// the categories defined in package scanner.
type TokType int

// Token represents a single input token of a regular expression. Tokens are
// produced by a tokenizer and consumed by the converter.
//
// An example would be a token for a literal:
//
//	TokType = Literal     // identifier for this kind of token
//	Lexeme  = "a"         // lexeme as it appeared in the expression
//	Span    = 4…5         // occured from byte position 4 in the expression
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes of an expression.
// A span denotes a start position and the position just behind the end.
// Errors of the converter carry the span of the offending token.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

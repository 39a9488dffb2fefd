/*
Package scanner defines an interface for tokenizers of regular expressions, to be
used with the converter of package regex.

The default tokenizer of this package reads an expression rune by rune.
Sub-packages `lexmach` and `plexer` provide tokenizers based on lexmachine and on
the lexer of participle, respectively. All of them produce the same token stream
for a given expression.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thompson"
)

// tracer traces with key 'thompson.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.scanner")
}

// Token types of regular expressions.
const (
	EOF     thompson.TokType = iota - 1 // end of input
	Other                               // any rune outside the expression alphabet
	Literal                             // a letter or a numeric character
	Star                                // '*'
	Union                               // '|'
	Concat                              // '.'
	LParen                              // '('
	RParen                              // ')'
)

var tokTypeNames = []string{"EOF", "Other", "Literal", "Star", "Union", "Concat", "LParen", "RParen"}

// TokTypeString returns a printable name for a token type.
func TokTypeString(tt thompson.TokType) string {
	if i := int(tt) + 1; i >= 0 && i < len(tokTypeNames) {
		return tokTypeNames[i]
	}
	return fmt.Sprintf("TokType(%d)", tt)
}

// Categorize returns the token type of a single rune. Letters and numbers are
// literals, the operators and parentheses have token types of their own, and every
// other rune is of type Other.
func Categorize(r rune) thompson.TokType {
	switch r {
	case '*':
		return Star
	case '|':
		return Union
	case '.':
		return Concat
	case '(':
		return LParen
	case ')':
		return RParen
	}
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return Literal
	}
	return Other
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() thompson.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, reading an expression rune by rune.
// Create one with RuneTokenizer.
type DefaultTokenizer struct {
	sourceID       string
	reader         io.RuneReader
	offset         uint64      // byte offset of next rune
	Error          func(error) // error handler
	skipWhitespace bool        // do not pass white space
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// RuneTokenizer creates a tokenizer for an expression.
func RuneTokenizer(sourceID string, input io.RuneReader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{
		sourceID: sourceID,
		reader:   input,
		Error:    logError,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() thompson.Token {
	for {
		r, sz, err := t.reader.ReadRune()
		if err != nil {
			if err != io.EOF {
				t.Error(fmt.Errorf("%s: cannot read expression (%w)", t.sourceID, err))
			}
			tracer().Debugf("DefaultTokenizer reached end of input")
			return MakeDefaultToken(EOF, "", thompson.Span{t.offset, t.offset})
		}
		span := thompson.Span{t.offset, t.offset + uint64(sz)}
		t.offset += uint64(sz)
		if t.skipWhitespace && unicode.IsSpace(r) {
			continue
		}
		return MakeDefaultToken(Categorize(r), string(r), span)
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the default
// tokenizer as well as by the scanners of the sub-packages.
type DefaultToken struct {
	kind   thompson.TokType
	lexeme string
	span   thompson.Span
}

func MakeDefaultToken(typ thompson.TokType, lexeme string, span thompson.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() thompson.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() thompson.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%s %q %v>", TokTypeString(t.kind), t.lexeme, t.span)
}

// --- Scanner options for the default tokenizer -----------------------------

// Option configures a default tokenizer.
type Option func(t *DefaultTokenizer)

// SkipWhitespace sets or clears option SkipWhitespace:
// do not pass white space runes as tokens of type Other.
func SkipWhitespace(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.skipWhitespace = b
	}
}

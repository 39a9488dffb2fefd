package plexer

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/thompson"
	"github.com/npillmayer/thompson/regex/scanner"
)

// Definition is the lexer definition for the expression alphabet.
// Literals are letters and numeric characters, as with scanner.Categorize.
var Definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Literal", Pattern: `[\p{L}\p{N}]`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Union", Pattern: `\|`},
	{Name: "Concat", Pattern: `\.`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `\s`},
	{Name: "Other", Pattern: `(?s).`},
})

var tokenTypes = map[string]thompson.TokType{
	"Literal":    scanner.Literal,
	"Star":       scanner.Star,
	"Union":      scanner.Union,
	"Concat":     scanner.Concat,
	"LParen":     scanner.LParen,
	"RParen":     scanner.RParen,
	"Whitespace": scanner.Other,
	"Other":      scanner.Other,
}

// PLScanner is a tokenizer based on a participle lexer, implementing the
// scanner.Tokenizer interface.
type PLScanner struct {
	lexer      lexer.Lexer
	end        uint64
	types      map[lexer.TokenType]thompson.TokType
	whitespace lexer.TokenType
	skipWS     bool
	done       bool
	Error      func(error)
}

var _ scanner.Tokenizer = (*PLScanner)(nil)

// Option configures a tokenizer.
type Option func(*PLScanner)

// SkipWhitespace sets or clears option SkipWhitespace:
// do not pass white space as tokens of type Other.
func SkipWhitespace(b bool) Option {
	return func(pls *PLScanner) {
		pls.skipWS = b
	}
}

// Tokenizer creates a tokenizer for an expression.
func Tokenizer(input string, opts ...Option) (*PLScanner, error) {
	lx, err := Definition.LexString("regex", input)
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer: %w", err)
	}
	pls := &PLScanner{
		lexer: lx,
		end:   uint64(len(input)),
		types: make(map[lexer.TokenType]thompson.TokType),
		Error: logError,
	}
	for name, lt := range Definition.Symbols() {
		if tt, ok := tokenTypes[name]; ok {
			pls.types[lt] = tt
		}
		if name == "Whitespace" {
			pls.whitespace = lt
		}
	}
	for _, opt := range opts {
		opt(pls)
	}
	return pls, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (pls *PLScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		pls.Error = logError
		return
	}
	pls.Error = h
}

// Default error reporting function for participle-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface.
func (pls *PLScanner) NextToken() thompson.Token {
	eof := scanner.MakeDefaultToken(scanner.EOF, "", thompson.Span{pls.end, pls.end})
	if pls.done {
		return eof
	}
	for {
		tok, err := pls.lexer.Next()
		if err != nil {
			pls.Error(err)
			pls.done = true
			return eof
		}
		if tok.EOF() {
			pls.done = true
			return eof
		}
		if pls.skipWS && tok.Type == pls.whitespace {
			continue
		}
		tt, ok := pls.types[tok.Type]
		if !ok {
			tt = scanner.Other
		}
		from := uint64(tok.Pos.Offset)
		return scanner.MakeDefaultToken(tt, tok.Value, thompson.Span{from, from + uint64(len(tok.Value))})
	}
}

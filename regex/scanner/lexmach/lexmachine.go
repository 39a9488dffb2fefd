package lexmach

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thompson"
	"github.com/npillmayer/thompson/regex/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'thompson.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// Option configures a lexmachine adapter.
type Option func(*options)

type options struct {
	skipWhitespace bool
}

// SkipWhitespace sets or clears option SkipWhitespace:
// do not pass white space as tokens of type Other.
func SkipWhitespace(b bool) Option {
	return func(o *options) {
		o.skipWhitespace = b
	}
}

// NewLMAdapter creates a new lexmachine adapter for the expression alphabet.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(opts ...Option) (*LMAdapter, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`[a-zA-Z0-9]`), MakeToken("Literal", scanner.Literal))
	adapter.Lexer.Add([]byte(`\*`), MakeToken("Star", scanner.Star))
	adapter.Lexer.Add([]byte(`\|`), MakeToken("Union", scanner.Union))
	adapter.Lexer.Add([]byte(`\.`), MakeToken("Concat", scanner.Concat))
	adapter.Lexer.Add([]byte(`\(`), MakeToken("LParen", scanner.LParen))
	adapter.Lexer.Add([]byte(`\)`), MakeToken("RParen", scanner.RParen))
	if o.skipWhitespace {
		adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	} else {
		adapter.Lexer.Add([]byte(`( |\t|\n|\r)`), MakeToken("Other", scanner.Other))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: []byte(input), Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   []byte
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() thompson.Token {
	end := uint64(len(lms.input))
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			lms.Error(err)
			return scanner.MakeDefaultToken(scanner.EOF, "", thompson.Span{end, end})
		}
		// decode a single rune and let the default categorizer decide
		r, sz := utf8.DecodeRune(lms.input[ui.StartTC:])
		lms.scanner.TC = ui.StartTC + sz
		tracer().Debugf("rune %#U not consumed by lexmachine", r)
		return scanner.MakeDefaultToken(
			scanner.Categorize(r),
			string(lms.input[ui.StartTC:ui.StartTC+sz]),
			thompson.Span{uint64(ui.StartTC), uint64(ui.StartTC + sz)},
		)
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", thompson.Span{end, end})
	}
	if tok == nil { // skipped white space
		return lms.NextToken()
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		thompson.TokType(token.Type),
		string(token.Lexeme),
		thompson.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, tt thompson.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tt), name, m), nil
	}
}

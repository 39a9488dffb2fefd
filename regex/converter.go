package regex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/thompson"
	"github.com/npillmayer/thompson/automaton"
	"github.com/npillmayer/thompson/regex/scanner"
)

// fragment is a partial automaton still open for composition: a start state
// and the set of states currently accepting. Fragments live on the operand stack
// during conversion only.
type fragment struct {
	start string
	ends  *automaton.StateSet
	span  thompson.Span // part of the expression this fragment has been built from
}

// Converter converts a regular expression into an epsilon-NFA.
// A converter may be used more than once; every call to Convert starts from
// scratch, with empty stacks and a fresh name allocator.
type Converter struct {
	regex     string
	operands  *arraystack.Stack // of fragment
	operators *arraystack.Stack // of pending
	names     *NameAllocator
	nfa       *automaton.NFA
	opts      options
}

// NewConverter creates a converter for an expression.
func NewConverter(regex string, opts ...Option) *Converter {
	c := &Converter{regex: regex}
	c.opts = options{
		prefix:    DefaultNamePrefix,
		tokenizer: defaultTokenizer,
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Convert is a shortcut for NewConverter(regex, opts...).Convert().
func Convert(regex string, opts ...Option) (*automaton.NFA, error) {
	return NewConverter(regex, opts...).Convert()
}

// MustConvert is like Convert, but panics if the expression is malformed.
func MustConvert(regex string, opts ...Option) *automaton.NFA {
	nfa, err := Convert(regex, opts...)
	if err != nil {
		panic(err)
	}
	return nfa
}

// Convert scans the expression and builds an automaton using Thompson's construction.
// For malformed expressions it returns an error wrapping ErrMalformedExpression and
// no automaton.
func (c *Converter) Convert() (*automaton.NFA, error) {
	tracer().Debugf("=== convert %q =================================", c.regex)
	tokenizer, err := c.opts.tokenizer(c.regex)
	if err != nil {
		return nil, fmt.Errorf("cannot tokenize expression %q: %w", c.regex, err)
	}
	var scanErr error
	tokenizer.SetErrorHandler(func(e error) {
		tracer().Errorf("scanner error: %v", e)
		if scanErr == nil {
			scanErr = e
		}
	})
	c.operands = arraystack.New()
	c.operators = arraystack.New()
	c.names = NewNameAllocator(c.opts.prefix)
	c.nfa = automaton.New()
	var end uint64
	token := tokenizer.NextToken()
	for ; token.TokType() != scanner.EOF; token = tokenizer.NextToken() {
		tracer().Debugf("token %s %q @%v", scanner.TokTypeString(token.TokType()), token.Lexeme(), token.Span())
		if err := c.scan(token); err != nil {
			return nil, err
		}
		end = token.Span().To()
	}
	if scanErr != nil {
		return nil, fmt.Errorf("cannot scan expression %q: %w", c.regex, scanErr)
	}
	for !c.operators.Empty() {
		p := c.popOperator()
		if p.op == opLParen {
			return nil, c.malformed(p.span, "unmatched '('")
		}
		if err := c.apply(p); err != nil {
			return nil, err
		}
	}
	v, ok := c.operands.Pop()
	if !ok {
		return nil, c.malformed(thompson.Span{end, end}, "empty expression")
	}
	frag := v.(fragment)
	if !c.operands.Empty() {
		return nil, c.malformed(frag.span, "missing operator before operand")
	}
	c.nfa.SetStartState(frag.start)
	tracer().Debugf("start state = %s, final states = %v", frag.start, c.nfa.FinalStates())
	return c.nfa, nil
}

// scan dispatches a single token.
func (c *Converter) scan(token thompson.Token) error {
	switch tt := token.TokType(); tt {
	case scanner.Literal:
		return c.literal(token)
	case scanner.Star, scanner.Union, scanner.Concat, scanner.LParen:
		return c.pushOperator(pending{op: operatorFor(tt), span: token.Span()})
	case scanner.RParen:
		return c.closeGroup(token)
	default:
		if c.opts.strict {
			return c.malformed(token.Span(), fmt.Sprintf("unexpected character %q", token.Lexeme()))
		}
		tracer().Debugf("ignoring character %q @%v", token.Lexeme(), token.Span())
	}
	return nil
}

// literal creates a fragment s1 --c--> s2 with s2 being final.
func (c *Converter) literal(token thompson.Token) error {
	r, _ := utf8.DecodeRuneInString(token.Lexeme())
	s1, s2 := c.names.Next(), c.names.Next()
	trans := automaton.NewTransitions().Add(automaton.Symbol(r), s2)
	if err := c.nfa.AddState(s1, trans, false); err != nil {
		return err
	}
	if err := c.nfa.AddState(s2, nil, true); err != nil {
		return err
	}
	c.operands.Push(fragment{start: s1, ends: automaton.NewStateSet(s2), span: token.Span()})
	return nil
}

func (c *Converter) pushOperator(p pending) error {
	if c.opts.precedence && p.op != opLParen {
		// apply pending operators binding at least as tight (left associative)
		for {
			top, ok := c.operators.Peek()
			if !ok {
				break
			}
			q := top.(pending)
			if q.op == opLParen || q.op.precedence() < p.op.precedence() {
				break
			}
			c.operators.Pop()
			if err := c.apply(q); err != nil {
				return err
			}
		}
	}
	c.operators.Push(p)
	return nil
}

// closeGroup pops and applies operators until an opening parenthesis is found.
// The parenthesis itself is discarded.
func (c *Converter) closeGroup(token thompson.Token) error {
	for {
		if c.operators.Empty() {
			return c.malformed(token.Span(), "unmatched ')'")
		}
		p := c.popOperator()
		if p.op == opLParen {
			return nil
		}
		if err := c.apply(p); err != nil {
			return err
		}
	}
}

// apply applies an operator to the fragment(s) on top of the operand stack and
// pushes the resulting fragment.
func (c *Converter) apply(p pending) error {
	tracer().Debugf("apply operator %s @%v", p.op, p.span)
	switch p.op {
	case opStar:
		f, err := c.popOperand(p)
		if err != nil {
			return err
		}
		ns := c.names.Next()
		trans := automaton.NewTransitions().Add(automaton.Epsilon, f.start)
		if err := c.nfa.AddState(ns, trans, true); err != nil { // accepts the empty string
			return err
		}
		for _, e := range f.ends.Values() { // loop back
			if err := c.nfa.AddEpsilon(e, f.start); err != nil {
				return err
			}
		}
		ends := automaton.NewStateSet(ns).Union(f.ends)
		c.operands.Push(fragment{start: ns, ends: ends, span: f.span.Extend(p.span)})
	case opConcat:
		f2, err := c.popOperand(p)
		if err != nil {
			return err
		}
		f1, err := c.popOperand(p)
		if err != nil {
			return err
		}
		for _, e := range f1.ends.Values() {
			if err := c.nfa.AddEpsilon(e, f2.start); err != nil {
				return err
			}
		}
		for _, e := range f1.ends.Values() {
			c.nfa.RemoveFinalState(e)
		}
		c.operands.Push(fragment{start: f1.start, ends: f2.ends, span: f1.span.Extend(f2.span)})
	case opUnion:
		f2, err := c.popOperand(p)
		if err != nil {
			return err
		}
		f1, err := c.popOperand(p)
		if err != nil {
			return err
		}
		ns := c.names.Next()
		trans := automaton.NewTransitions().Add(automaton.Epsilon, f1.start, f2.start)
		if err := c.nfa.AddState(ns, trans, false); err != nil {
			return err
		}
		ends := f1.ends.Copy().Union(f2.ends)
		c.operands.Push(fragment{start: ns, ends: ends, span: f1.span.Extend(f2.span)})
	default:
		return c.malformed(p.span, fmt.Sprintf("cannot apply %q", p.op))
	}
	return nil
}

func (c *Converter) popOperand(p pending) (fragment, error) {
	v, ok := c.operands.Pop()
	if !ok {
		return fragment{}, c.malformed(p.span, fmt.Sprintf("missing operand for operator '%s'", p.op))
	}
	return v.(fragment), nil
}

func (c *Converter) popOperator() pending {
	v, _ := c.operators.Pop()
	return v.(pending)
}

func (c *Converter) malformed(span thompson.Span, msg string) error {
	err := &ExpressionError{Expr: c.regex, Span: span, Msg: msg}
	tracer().Errorf("%s", err.Error())
	return err
}

// --- Options ---------------------------------------------------------------

// Option configures a converter.
type Option func(*options)

type options struct {
	strict     bool
	precedence bool
	prefix     string
	tokenizer  TokenizerFactory
}

// TokenizerFactory creates a tokenizer for an expression.
type TokenizerFactory func(regex string) (scanner.Tokenizer, error)

func defaultTokenizer(regex string) (scanner.Tokenizer, error) {
	return scanner.RuneTokenizer("regex", strings.NewReader(regex)), nil
}

// Strict sets or clears strict mode. In strict mode characters outside the
// expression alphabet are reported as errors instead of being ignored.
func Strict(b bool) Option {
	return func(o *options) {
		o.strict = b
	}
}

// Precedence sets or clears operator precedence. Without precedence (the default),
// operators are applied in stack order only. With precedence, '*' binds tighter
// than '.', which binds tighter than '|'.
func Precedence(b bool) Option {
	return func(o *options) {
		o.precedence = b
	}
}

// NamePrefix sets the prefix for state names (default is "q").
func NamePrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithTokenizer sets a factory for the tokenizer to use. If factory is nil, the
// default tokenizer is used.
func WithTokenizer(factory TokenizerFactory) Option {
	return func(o *options) {
		if factory == nil {
			o.tokenizer = defaultTokenizer
			return
		}
		o.tokenizer = factory
	}
}

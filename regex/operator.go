package regex

import (
	"fmt"

	"github.com/npillmayer/thompson"
	"github.com/npillmayer/thompson/regex/scanner"
)

type operator int8

const (
	opNone   operator = iota
	opUnion           // '|'
	opConcat          // '.'
	opStar            // '*'
	opLParen          // '('
)

func (op operator) String() string {
	switch op {
	case opUnion:
		return "|"
	case opConcat:
		return "."
	case opStar:
		return "*"
	case opLParen:
		return "("
	}
	return fmt.Sprintf("operator(%d)", int8(op))
}

// The higher the value, the tighter the binding. Only used with option Precedence.
func (op operator) precedence() int {
	switch op {
	case opUnion:
		return 1
	case opConcat:
		return 2
	case opStar:
		return 3
	}
	return 0
}

func operatorFor(tt thompson.TokType) operator {
	switch tt {
	case scanner.Union:
		return opUnion
	case scanner.Concat:
		return opConcat
	case scanner.Star:
		return opStar
	case scanner.LParen:
		return opLParen
	}
	return opNone
}

// pending is an entry of the operator stack.
type pending struct {
	op   operator
	span thompson.Span // position of the operator within the expression
}

package regex

import (
	"errors"
	"fmt"

	"github.com/npillmayer/thompson"
)

// ErrMalformedExpression is wrapped by all errors the converter returns for
// syntactically invalid expressions.
var ErrMalformedExpression = errors.New("malformed expression")

// ExpressionError describes a malformed expression and the position of the
// offending token. It unwraps to ErrMalformedExpression.
type ExpressionError struct {
	Expr string        // the expression
	Span thompson.Span // position of the error within Expr
	Msg  string
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("malformed expression %q at %v: %s", e.Expr, e.Span, e.Msg)
}

func (e *ExpressionError) Unwrap() error {
	return ErrMalformedExpression
}

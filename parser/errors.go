package parser

import (
	"fmt"

	"go.creack.net/mathi/lexer"
)

// Error is implemented by every error returned from Parse. A parse error
// aborts the whole input: no partial program is returned.
type Error interface {
	error
	parseError()
}

// UnexpectedTokenError is a grammar mismatch.
type UnexpectedTokenError struct {
	Token    lexer.Token
	Expected string // What the grammar allowed at this point.
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %s at %d", e.Expected, describe(e.Token), e.Token.Pos())
}

// NumberFormatError is a number lexeme that is not a valid float, e.g. "1.2.3".
type NumberFormatError struct {
	Text string
	Err  error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("cannot convert %q into a number: %s", e.Text, e.Err)
}

func (e *NumberFormatError) Unwrap() error { return e.Err }

// InvalidOperatorError is a token that reached operator construction
// without being an operator.
type InvalidOperatorError struct {
	Token lexer.Token
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("%s is not an operator", e.Token)
}

// UnclosedParenthesisError reports input ending inside parentheses.
type UnclosedParenthesisError struct {
	Open lexer.Token // The '(' left open.
}

func (e *UnclosedParenthesisError) Error() string {
	return fmt.Sprintf("parenthesis opened at %d is never closed: found end of input, expected \")\"", e.Open.Pos())
}

// EmptyParenthesisError reports "()".
type EmptyParenthesisError struct {
	Token lexer.Token // The ')'.
}

func (e *EmptyParenthesisError) Error() string {
	return fmt.Sprintf("empty parenthesis at %d: found \")\", expected expression", e.Token.Pos())
}

// NestingError reports input nested deeper than the parser allows.
type NestingError struct {
	Limit int
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("expression nested deeper than %d levels", e.Limit)
}

func (*UnexpectedTokenError) parseError()     {}
func (*NumberFormatError) parseError()        {}
func (*InvalidOperatorError) parseError()     {}
func (*UnclosedParenthesisError) parseError() {}
func (*EmptyParenthesisError) parseError()    {}
func (*NestingError) parseError()             {}

var (
	_ Error = (*UnexpectedTokenError)(nil)
	_ Error = (*NumberFormatError)(nil)
	_ Error = (*InvalidOperatorError)(nil)
	_ Error = (*UnclosedParenthesisError)(nil)
	_ Error = (*EmptyParenthesisError)(nil)
	_ Error = (*NestingError)(nil)
)

func describe(tok lexer.Token) string {
	if tok.Type == lexer.TokEOF {
		return "end of input"
	}
	return tok.String()
}

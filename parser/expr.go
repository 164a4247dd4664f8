package parser

import (
	"errors"
	"strconv"

	"go.creack.net/mathi/ast"
	"go.creack.net/mathi/lexer"
)

func parseExpr(p *parser, bp bindingPower) (ast.Node, error) {
	// Every led pass deepens the left spine by one node, so it counts toward
	// the nesting limit like a parenthesis does.
	entered := 0
	defer func() { p.depth -= entered }()

	entered++
	if err := p.enter(); err != nil {
		return nil, err
	}

	// Parse the primary expression, always start with nud.
	left, err := parseTerm(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken().Type] > bp {
		entered++
		if err := p.enter(); err != nil {
			return nil, err
		}
		tok := p.curToken()
		ledFn, exists := p.ledLookupTable[tok.Type]
		if !exists {
			return nil, &InvalidOperatorError{Token: tok}
		}
		if left, err = ledFn(p, left, p.bindingPowerLookupTable[tok.Type]); err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parseTerm parses a single term, without any trailing binary operator.
func parseTerm(p *parser) (ast.Node, error) {
	tok := p.curToken()
	nudFn, exists := p.nudLookupTable[tok.Type]
	if !exists {
		return nil, &UnexpectedTokenError{Token: tok, Expected: "expression"}
	}
	return nudFn(p)
}

func parseNumberExpr(p *parser) (ast.Node, error) {
	val := p.nextToken().Value
	number, err := strconv.ParseFloat(val, 64)
	// Out of range literals become ±Inf.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return nil, &NumberFormatError{Text: val, Err: err}
	}
	return ast.NumberLiteral{Value: number}, nil
}

// parseIdentifierExpr parses a variable reference, or an assignment when the
// identifier is directly followed by '='. The right hand side of an
// assignment is a full statement, which makes assignment right associative.
func parseIdentifierExpr(p *parser) (ast.Node, error) {
	name := p.nextToken().Value
	if p.curToken().Type != lexer.TokAssign {
		return ast.VariableRef{Name: name}, nil
	}
	p.nextToken() // Consume '='.

	value, err := parseStmt(p)
	if err != nil {
		return nil, err
	}
	return ast.Assignment{
		Target: name,
		Value:  value,
	}, nil
}

// parsePrefixExpr parses unary + and -. The operand is a term, so -2^2 is
// (-2)^2.
func parsePrefixExpr(p *parser) (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	opTok := p.nextToken()
	operator, err := unaryOperator(opTok)
	if err != nil {
		return nil, err
	}
	operand, err := parseTerm(p)
	if err != nil {
		return nil, err
	}
	return ast.UnaryOp{
		Operator: operator,
		Operand:  operand,
	}, nil
}

func parseGroupingExpr(p *parser) (ast.Node, error) {
	open := p.nextToken()
	switch p.curToken().Type {
	case lexer.TokParenRight:
		return nil, &EmptyParenthesisError{Token: p.curToken()}
	case lexer.TokEOF:
		return nil, &UnclosedParenthesisError{Open: open}
	}

	content, err := parseStmt(p)
	if err != nil {
		return nil, err
	}

	switch tok := p.curToken(); tok.Type {
	case lexer.TokParenRight:
		p.nextToken()
		return content, nil
	case lexer.TokEOF:
		return nil, &UnclosedParenthesisError{Open: open}
	default:
		return nil, &UnexpectedTokenError{Token: tok, Expected: `")"`}
	}
}

func parseBinaryExpr(p *parser, left ast.Node, bp bindingPower) (ast.Node, error) {
	operator, err := binaryOperator(p.curToken())
	if err != nil {
		return nil, err
	}
	p.nextToken()

	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return ast.BinaryOp{
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}

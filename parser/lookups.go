package parser

import (
	"go.creack.net/mathi/ast"
	"go.creack.net/mathi/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
	bpPower
)

type nudHandler func(*parser) (ast.Node, error)
type ledHandler func(*parser, ast.Node, bindingPower) (ast.Node, error)

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	p.nudLookupTable = lookupTable[nudHandler]{}
	p.ledLookupTable = lookupTable[ledHandler]{}
	p.bindingPowerLookupTable = lookupTable[bindingPower]{}

	// Additive, multiplicative & power. All left associative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMinus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMultiply, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokDivide, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokPower, bpPower, parseBinaryExpr)

	// Terms.
	p.nud(lexer.TokNumber, parseNumberExpr)
	p.nud(lexer.TokIdentifier, parseIdentifierExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokPlus, parsePrefixExpr)
	p.nud(lexer.TokMinus, parsePrefixExpr)
}

func binaryOperator(tok lexer.Token) (ast.BinaryOperator, error) {
	switch tok.Type {
	case lexer.TokPlus:
		return ast.Add, nil
	case lexer.TokMinus:
		return ast.Sub, nil
	case lexer.TokMultiply:
		return ast.Mul, nil
	case lexer.TokDivide:
		return ast.Div, nil
	case lexer.TokPower:
		return ast.Pow, nil
	}
	return 0, &InvalidOperatorError{Token: tok}
}

func unaryOperator(tok lexer.Token) (ast.UnaryOperator, error) {
	switch tok.Type {
	case lexer.TokMinus:
		return ast.Negate, nil
	case lexer.TokPlus:
		return ast.Identity, nil
	}
	return 0, &InvalidOperatorError{Token: tok}
}

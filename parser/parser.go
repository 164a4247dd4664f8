// Package parser turns a token sequence into an ast.Program.
package parser

import (
	"go.creack.net/mathi/ast"
	"go.creack.net/mathi/lexer"
)

// DefaultMaxDepth is the nesting limit used when none is given.
const DefaultMaxDepth = 1000

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the current token.

	depth    int
	maxDepth int

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

// Option configures Parse.
type Option func(*parser)

// WithMaxDepth bounds the nesting of parentheses, unary operators,
// assignments and binary operators, which bounds the height of the tree and
// so the evaluation recursion.
func WithMaxDepth(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

func newParser(tokens []lexer.Token, opts ...Option) *parser {
	p := &parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.createTokenLookups()
	return p
}

// Parse parses a whole token sequence, as produced by lexer.Tokenize.
// Each statement ends with ';', a newline or the end of input.
func Parse(tokens []lexer.Token, opts ...Option) (ast.Program, error) {
	return parseProgram(newParser(tokens, opts...))
}

// ParseString tokenizes and parses input.
func ParseString(input string, opts ...Option) (ast.Program, error) {
	return Parse(lexer.Tokenize(input), opts...)
}

// curToken returns the current token. Past the end of the sequence, it is
// always EOF.
func (p *parser) curToken() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Type: lexer.TokEOF}
}

// nextToken consumes the current token and returns it.
func (p *parser) nextToken() lexer.Token {
	tok := p.curToken()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it is of one of the given types.
func (p *parser) expect(expected string, kind ...lexer.TokenType) (lexer.Token, error) {
	if !p.curToken().Type.IsOneOf(kind...) {
		return lexer.Token{}, &UnexpectedTokenError{Token: p.curToken(), Expected: expected}
	}
	return p.nextToken(), nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &NestingError{Limit: p.maxDepth}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

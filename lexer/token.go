package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokEOF TokenType = iota

	// Literals.
	TokNumber
	TokIdentifier

	// Operators.
	TokPlus
	TokMinus
	TokMultiply
	TokDivide
	TokPower
	TokAssign

	// Delimiters.
	TokParenLeft
	TokParenRight
	TokStatementEnd

	// Anything the lexer doesn't know about. Reported by the parser.
	TokUnknown

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokEOF: "EOF",

	TokNumber:     "Num",
	TokIdentifier: "Ident",

	TokPlus:     "Plus",
	TokMinus:    "Minus",
	TokMultiply: "Multiply",
	TokDivide:   "Divide",
	TokPower:    "Power",
	TokAssign:   "Assign",

	TokParenLeft:    "LParen",
	TokParenRight:   "RParen",
	TokStatementEnd: "EndLine",

	TokUnknown: "Unknown",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an arithmetic line.
type Token struct {
	Type  TokenType
	Value string // Lexeme.

	pos int
}

// Pos returns the byte offset of the token in the input.
func (t Token) Pos() int { return t.pos }

// String renders the token as <Kind> or <Kind:lexeme> for the kinds
// carrying a lexeme.
func (t Token) String() string {
	switch t.Type {
	case TokNumber, TokIdentifier, TokUnknown:
		return fmt.Sprintf("<%s:%s>", t.Type, t.Value)
	}
	return fmt.Sprintf("<%s>", t.Type)
}

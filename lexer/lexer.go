// Package lexer provides the lexical analyzer for arithmetic lines.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const (
	digitChars      = "0123456789"
	numberChars     = digitChars + "."
	letterChars     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	identifierChars = letterChars + digitChars
	spaceChars      = " \t\r"
)

// eof is returned by next once the input is exhausted.
const eof rune = -1

type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the whole input. The result always ends with exactly one
// TokEOF token. It never fails: characters that don't start a token are
// returned as TokUnknown.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens
		}
	}
}

// NextToken returns the next token. Once the input is exhausted, every call
// returns TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		l.atEOF = false
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

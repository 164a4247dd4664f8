package lexer

import "strings"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+':  TokPlus,
	'-':  TokMinus,
	'*':  TokMultiply,
	'/':  TokDivide,
	'^':  TokPower,
	'=':  TokAssign,
	'(':  TokParenLeft,
	')':  TokParenRight,
	';':  TokStatementEnd,
	'\n': TokStatementEnd,
}

func lexText(l *Lexer) stateFn {
	switch r := l.next(); {
	case r == eof:
		return l.emit(TokEOF)
	case strings.ContainsRune(spaceChars, r):
		l.acceptRun(spaceChars)
		l.ignore()
		return lexText
	case strings.ContainsRune(numberChars, r):
		return lexNumber
	case strings.ContainsRune(letterChars, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			return l.emit(tok)
		}
		return l.emit(TokUnknown)
	}
}

// lexNumber scans the rest of a run of digits and dots. The run is not
// validated here: "1.2.3" is a single number token.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(numberChars)
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identifierChars)
	return l.emit(TokIdentifier)
}

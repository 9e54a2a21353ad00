package lambda

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune

	diags []Diagnostic
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: -1}
	l.readRune()
	return l
}

// scanSource tokenizes the whole input in a single pass. Lexical faults are
// collected as diagnostics and scanning continues, so one bad character
// never hides the rest of the file. The stream always ends with a synthetic
// EOF token.
func scanSource(input string) ([]Token, []Diagnostic) {
	l := newLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			return tokens, l.diags
		}
	}
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = -1
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	switch l.ch {
	case 0:
		return l.makeToken(tokenEOF, "")
	case '(':
		return l.single(tokenLParen)
	case ')':
		return l.single(tokenRParen)
	case '{':
		return l.single(tokenLBrace)
	case '}':
		return l.single(tokenRBrace)
	case '[':
		return l.single(tokenLBracket)
	case ']':
		return l.single(tokenRBracket)
	case ',':
		return l.single(tokenComma)
	case '.':
		return l.single(tokenDot)
	case ';':
		return l.single(tokenSemicolon)
	case '+':
		return l.single(tokenPlus)
	case '-':
		return l.single(tokenMinus)
	case '*':
		return l.single(tokenAsterisk)
	case '/':
		return l.single(tokenSlash)
	case '!':
		return l.double('=', tokenNotEQ, tokenBang)
	case '=':
		return l.double('=', tokenEQ, tokenAssign)
	case '<':
		return l.double('=', tokenLTE, tokenLT)
	case '>':
		return l.double('=', tokenGTE, tokenGT)
	case '"':
		return l.readString()
	default:
		switch {
		case isIdentifierStart(l.ch):
			return l.readIdentifier()
		case unicode.IsDigit(l.ch):
			return l.readNumber()
		default:
			l.report(fmt.Sprintf("Unexpected character %q.", l.ch))
			l.readRune()
			return l.NextToken()
		}
	}
}

func (l *lexer) makeToken(tt TokenType, lexeme string) Token {
	return Token{Type: tt, Lexeme: lexeme, Pos: Position{Line: l.line, Column: l.column}}
}

func (l *lexer) single(tt TokenType) Token {
	tok := l.makeToken(tt, string(l.ch))
	l.readRune()
	return tok
}

func (l *lexer) double(next rune, twoChar, oneChar TokenType) Token {
	if l.peekRune() == next {
		first := l.ch
		tok := l.makeToken(twoChar, "")
		l.readRune()
		tok.Lexeme = string(first) + string(l.ch)
		l.readRune()
		return tok
	}
	return l.single(oneChar)
}

func (l *lexer) report(message string) {
	l.diags = append(l.diags, errorDiagnostic(Position{Line: l.line, Column: l.column}, message))
}

// skipWhitespaceAndComments discards whitespace and "**"-delimited block
// comments. Comments may span lines and do not nest; a missing closing
// marker is reported and the rest of the input is consumed.
func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readRune()
			continue
		case '*':
			if l.peekRune() != '*' {
				return
			}
			l.skipBlockComment()
			continue
		default:
			return
		}
	}
}

func (l *lexer) skipBlockComment() {
	start := Position{Line: l.line, Column: l.column}
	l.readRune() // opening "*"
	l.readRune() // second "*"
	for {
		if l.ch == 0 {
			l.diags = append(l.diags, errorDiagnostic(start, "Unterminated comment."))
			return
		}
		if l.ch == '*' && l.peekRune() == '*' {
			l.readRune()
			l.readRune()
			return
		}
		l.readRune()
	}
}

func (l *lexer) readIdentifier() Token {
	pos := Position{Line: l.line, Column: l.column}
	start := l.offset - l.width
	for isIdentifierRune(l.peekRune()) {
		l.readRune()
	}
	lexeme := l.input[start:l.offset]
	l.readRune()
	return Token{Type: lookupIdent(lexeme), Lexeme: lexeme, Pos: pos}
}

// readNumber consumes a plain digit run. There is deliberately no decimal
// point in the grammar even though values are stored as float64; fractional
// results only ever come from division.
func (l *lexer) readNumber() Token {
	pos := Position{Line: l.line, Column: l.column}
	start := l.offset - l.width
	for unicode.IsDigit(l.peekRune()) {
		l.readRune()
	}
	lexeme := l.input[start:l.offset]
	l.readRune()

	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		l.diags = append(l.diags, errorDiagnostic(pos, "Invalid number literal."))
		return Token{Type: tokenNumber, Lexeme: lexeme, Literal: float64(0), Pos: pos}
	}
	return Token{Type: tokenNumber, Lexeme: lexeme, Literal: value, Pos: pos}
}

// readString consumes a double-quoted literal. Newlines are allowed inside;
// a missing closing quote is reported and the token is dropped.
func (l *lexer) readString() Token {
	pos := Position{Line: l.line, Column: l.column}
	start := l.offset
	for {
		l.readRune()
		switch l.ch {
		case 0:
			l.diags = append(l.diags, errorDiagnostic(pos, "Unterminated string."))
			return l.makeToken(tokenEOF, "")
		case '"':
			value := l.input[start : l.offset-l.width]
			l.readRune()
			return Token{Type: tokenString, Lexeme: `"` + value + `"`, Literal: value, Pos: pos}
		}
	}
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

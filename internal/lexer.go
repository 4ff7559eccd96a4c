package internal

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// tabWidth is the number of columns a tab advances
const tabWidth = 4

// Lexer produces tokens on demand from a source string
type Lexer struct {
	source  string
	start   int
	current int

	// line and col locate the next unread character
	line int
	col  int

	// startLine and startCol locate the token being scanned
	startLine int
	startCol  int
}

var keywords = map[string]Keyword{
	"is":       IS,
	"negative": NEGATIVE,
}

var operators = map[byte]Operator{
	'+': ADD,
	'-': SUB,
	'*': MUL,
	'/': DIV,
	'%': MOD,
}

var separators = map[byte]Separator{
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	';': SEMICOLON,
}

// NewLexer creates a lexer positioned at the start of source
func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		col:    1,
	}
}

// Scan returns every remaining token up to and including EOF
func (l *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tk, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tk)
		if tk.Type == EOF {
			return tokens, nil
		}
	}
}

// Next scans the next token. Once the input is exhausted every call returns
// an EOF token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	l.start = l.current
	l.startLine, l.startCol = l.line, l.col

	if l.isAtEnd() {
		return l.emit(EOF), nil
	}

	c := l.advance()
	switch {
	case isDigit(c):
		return l.number(), nil
	case isAlpha(c):
		return l.identifier(), nil
	}

	if op, ok := operators[c]; ok {
		tk := l.emit(OPERATOR)
		tk.Operator = op
		return tk, nil
	}
	if sep, ok := separators[c]; ok {
		tk := l.emit(SEPARATOR)
		tk.Separator = sep
		return tk, nil
	}

	// Report the whole rune and skip past it
	r, size := utf8.DecodeRuneInString(l.source[l.start:])
	l.current = l.start + size
	char := string(r)
	if r == utf8.RuneError && size == 1 {
		char = fmt.Sprintf(`\x%02x`, c)
	}
	return Token{}, &LexError{Char: char, Location: l.location()}
}

func (l *Lexer) number() Token {
	l.digits()

	// A dot only belongs to the number when a digit follows it
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		l.digits()
	}

	lexeme := l.source[l.start:l.current]
	literal, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("shap: malformed number literal " + strconv.Quote(lexeme))
	}

	tk := l.emit(NUMBER)
	tk.Literal = literal
	return tk
}

func (l *Lexer) digits() {
	for isDigit(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) identifier() Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	if kw, ok := keywords[l.source[l.start:l.current]]; ok {
		tk := l.emit(KEYWORD)
		tk.Keyword = kw
		return tk
	}
	return l.emit(IDENTIFIER)
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\r':
			l.current++
			l.col++
		case '\t':
			l.current++
			l.col += tabWidth
		case '\n':
			l.current++
			l.line++
			l.col = 1
		default:
			return
		}
	}
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	l.col++
	return c
}

// peek returns the next unread byte or 0 at the end of input
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) emit(tt TokenType) Token {
	return Token{
		Type:   tt,
		Lexeme: l.source[l.start:l.current],
		Loc:    l.location(),
	}
}

func (l *Lexer) location() Location {
	return Location{Line: l.startLine, Column: l.startCol}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '\''
}

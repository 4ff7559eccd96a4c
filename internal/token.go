package internal

import "strconv"

// TokenType Holds a token
type TokenType int

const (
	EOF TokenType = iota - 1

	// Literals.
	// number, *variable*
	NUMBER
	IDENTIFIER

	// Keywords.
	// is, negative
	KEYWORD

	// Single-character tokens.
	// +, -, *, /, %
	OPERATOR
	// (, ), ;
	SEPARATOR
)

// Operator is the kind of an OPERATOR token
type Operator int

const (
	ADD Operator = iota
	SUB
	MUL
	DIV
	MOD
)

// Separator is the kind of a SEPARATOR token
type Separator int

const (
	LEFT_PAREN Separator = iota
	RIGHT_PAREN
	SEMICOLON
)

// Keyword is the kind of a KEYWORD token. Keywords are reserved but no
// grammar rule consumes them yet.
type Keyword int

const (
	IS Keyword = iota
	NEGATIVE
)

// Location is a 1-based position in the source
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Token is a lexical unit. Only the field matching Type is meaningful besides
// Lexeme and Loc.
type Token struct {
	Type      TokenType
	Lexeme    string
	Literal   float64
	Operator  Operator
	Separator Separator
	Keyword   Keyword
	Loc       Location
}

// IsOperator reports whether the token is one of the given operators.
func (t Token) IsOperator(ops ...Operator) bool {
	if t.Type != OPERATOR {
		return false
	}
	for _, op := range ops {
		if t.Operator == op {
			return true
		}
	}
	return false
}

// IsSeparator reports whether the token is the given separator.
func (t Token) IsSeparator(sep Separator) bool {
	return t.Type == SEPARATOR && t.Separator == sep
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return t.Lexeme
}

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case IDENTIFIER:
		return "IDENTIFIER"
	case KEYWORD:
		return "KEYWORD"
	case OPERATOR:
		return "OPERATOR"
	case SEPARATOR:
		return "SEPARATOR"
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

package internal

// tokenBuffer holds the tokens fetched from the lexer so far. pos is the read
// cursor; len(tokens) is how far the lexer has been pulled.
type tokenBuffer struct {
	lexer  *Lexer
	tokens []Token
	pos    int
}

func newTokenBuffer(lexer *Lexer) *tokenBuffer {
	return &tokenBuffer{lexer: lexer}
}

// peek returns the token under the cursor, fetching it from the lexer if
// needed. Lexer errors are wrapped into a ParseError.
func (b *tokenBuffer) peek() (Token, error) {
	if b.pos >= len(b.tokens) {
		tk, err := b.lexer.Next()
		if err != nil {
			return Token{}, &ParseError{Err: err}
		}
		b.tokens = append(b.tokens, tk)
	}
	return b.tokens[b.pos], nil
}

// next returns the token under the cursor and moves past it
func (b *tokenBuffer) next() (Token, error) {
	tk, err := b.peek()
	if err != nil {
		return Token{}, err
	}
	b.pos++
	return tk, nil
}

// prev moves the cursor one token back and returns that token
func (b *tokenBuffer) prev() (Token, error) {
	if b.pos == 0 {
		return Token{}, &ParseError{Err: errCursorUnderflow}
	}
	b.pos--
	return b.peek()
}

package internal

// program        := statement* EOF
// statement      := expression ';'
// expression     := multiplication ( ( '+' | '-' ) multiplication )*
// multiplication := unary ( ( '*' | '/' | '%' ) unary )*
// unary          := '-' unary | primary
// primary        := NUMBER | '(' expression ')'

// Parser builds statements from the tokens of a single source string
type Parser struct {
	tokens *tokenBuffer
}

// NewParser creates a parser reading from a fresh lexer over source
func NewParser(source string) *Parser {
	return &Parser{
		tokens: newTokenBuffer(NewLexer(source)),
	}
}

// Parse parses the whole input. It stops at the first lexical or syntax
// error and returns no statements in that case.
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for {
		tk, err := p.tokens.peek()
		if err != nil {
			return nil, err
		}
		if tk.Type == EOF {
			return stmts, nil
		}
		st, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
}

func (p *Parser) statement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	last, err := p.tokens.next()
	if err != nil {
		return nil, err
	}
	if !last.IsSeparator(SEMICOLON) {
		return nil, &ParseError{Token: last, Err: errExpectedSemicolon}
	}
	return &ExprStmt{
		Expression: expr,
		Last:       last,
	}, nil
}

func (p *Parser) expression() (Expr, error) {
	expr, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	for {
		operator, ok, err := p.matchOperator(ADD, SUB)
		if err != nil {
			return nil, err
		}
		if !ok {
			return expr, nil
		}
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
}

func (p *Parser) multiplication() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		operator, ok, err := p.matchOperator(MUL, DIV, MOD)
		if err != nil {
			return nil, err
		}
		if !ok {
			return expr, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
}

func (p *Parser) unary() (Expr, error) {
	operator, ok, err := p.matchOperator(SUB)
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.primary()
	}
	right, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{
		Operator: operator,
		Right:    right,
	}, nil
}

func (p *Parser) primary() (Expr, error) {
	tk, err := p.tokens.next()
	if err != nil {
		return nil, err
	}

	if tk.Type == NUMBER {
		return &LiteralExpr{Token: tk, Value: tk.Literal}, nil
	}

	if tk.IsSeparator(LEFT_PAREN) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		closing, err := p.tokens.next()
		if err != nil {
			return nil, err
		}
		if !closing.IsSeparator(RIGHT_PAREN) {
			return nil, &ParseError{Token: closing, Err: errUnclosedParen}
		}
		return &GroupingExpr{Paren: tk, Expression: expr}, nil
	}

	// Leave the offending token under the cursor
	tk, err = p.tokens.prev()
	if err != nil {
		return nil, err
	}
	return nil, &ParseError{Token: tk, Err: errExpectedExpression}
}

// matchOperator consumes the next token if it is one of ops
func (p *Parser) matchOperator(ops ...Operator) (Token, bool, error) {
	tk, err := p.tokens.peek()
	if err != nil {
		return Token{}, false, err
	}
	if !tk.IsOperator(ops...) {
		return Token{}, false, nil
	}
	if _, err := p.tokens.next(); err != nil {
		return Token{}, false, err
	}
	return tk, true, nil
}

package internal

// Walker evaluates trees built by the parser. It keeps no state between
// statements.
type Walker struct{}

// NewWalker creates a walker
func NewWalker() *Walker {
	return &Walker{}
}

// Eval evaluates a statement and returns the value of its expression
func (w *Walker) Eval(stmt Stmt) (float64, error) {
	switch stmt := stmt.(type) {
	case *ExprStmt:
		return w.EvalExpr(stmt.Expression)
	case nil:
		return 0, &WalkError{Err: errUndefinedStmt}
	}
	return 0, &WalkError{Location: stmt.Loc(), Err: errUndefinedStmt}
}

// EvalExpr reduces an expression to its value
func (w *Walker) EvalExpr(expr Expr) (float64, error) {
	switch expr := expr.(type) {
	case *LiteralExpr:
		return expr.Value, nil
	case *GroupingExpr:
		return w.EvalExpr(expr.Expression)
	case *UnaryExpr:
		return w.visitUnaryExpr(expr)
	case *BinaryExpr:
		return w.visitBinaryExpr(expr)
	case nil:
		return 0, &WalkError{Err: errUndefinedExpr}
	}
	return 0, &WalkError{Location: expr.Loc(), Err: errUndefinedExpr}
}

func (w *Walker) visitUnaryExpr(expr *UnaryExpr) (float64, error) {
	if !expr.Operator.IsOperator(SUB) {
		return 0, &WalkError{Location: expr.Operator.Loc, Err: errInvalidOperator}
	}
	right, err := w.EvalExpr(expr.Right)
	if err != nil {
		return 0, err
	}
	return -right, nil
}

func (w *Walker) visitBinaryExpr(expr *BinaryExpr) (float64, error) {
	if expr.Operator.Type != OPERATOR {
		return 0, &WalkError{Location: expr.Operator.Loc, Err: errInvalidOperator}
	}
	apply, ok := binaryOperations[expr.Operator.Operator]
	if !ok {
		return 0, &WalkError{Location: expr.Operator.Loc, Err: errInvalidOperator}
	}

	left, err := w.EvalExpr(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := w.EvalExpr(expr.Right)
	if err != nil {
		return 0, err
	}
	return apply(left, right), nil
}

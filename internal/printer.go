package internal

import (
	"fmt"
	"strings"
)

// FormatTree prints statements in prefix notation, one per line. Groupings
// are implied by the nesting and are not printed.
func FormatTree(stmts []Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		if exprStmt, ok := stmt.(*ExprStmt); ok {
			b.WriteString(formatExpr(exprStmt.Expression))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatExpr(expr Expr) string {
	switch expr := expr.(type) {
	case *LiteralExpr:
		return fmt.Sprintf("%v", expr.Value)
	case *GroupingExpr:
		return formatExpr(expr.Expression)
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", expr.Operator.Lexeme, formatExpr(expr.Right))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", expr.Operator.Lexeme, formatExpr(expr.Left), formatExpr(expr.Right))
	}
	return ""
}

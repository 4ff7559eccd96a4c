// Package internal implements the shap language: a lexer producing tokens on
// demand, a recursive descent parser and a tree walking evaluator over
// float64 values.
package internal

//go:generate go run ../cmd/ast -o expr.go Expr
//go:generate go run ../cmd/ast -o stmt.go Stmt

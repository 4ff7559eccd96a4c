package internal

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// InputError is an error that can be traced back to a location in the source.
// Every error produced by the lexer, parser and walker implements it.
type InputError interface {
	error
	Loc() Location
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*WalkError)(nil)
)

// LexError indicates a character that does not start any token
type LexError struct {
	Char     string
	Location Location
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Invalid character: '%s'", e.Char)
}

// Loc returns the location of the invalid character
func (e *LexError) Loc() Location {
	return e.Location
}

// ParseError wraps a lexer error or reports a token that does not fit the
// grammar. Err describes what the parser expected.
type ParseError struct {
	Token Token
	Err   error
}

func (e *ParseError) Error() string {
	var lexErr *LexError
	if errors.As(e.Err, &lexErr) || errors.Is(e.Err, errCursorUnderflow) {
		return e.Err.Error()
	}
	return fmt.Sprintf("Unexpected token '%s': %s", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Loc returns the location of the offending token or character
func (e *ParseError) Loc() Location {
	var lexErr *LexError
	if errors.As(e.Err, &lexErr) {
		return lexErr.Loc()
	}
	return e.Token.Loc
}

// WalkError indicates a malformed tree reaching the walker
type WalkError struct {
	Location Location
	Err      error
}

func (e *WalkError) Error() string {
	return e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Loc returns the location of the node that could not be evaluated
func (e *WalkError) Loc() Location {
	return e.Location
}

// Parser errors
var errExpectedSemicolon = errors.New("Expected ';' after expression")
var errUnclosedParen = errors.New("Expected ')' after expression")
var errExpectedExpression = errors.New("Expected expression")
var errCursorUnderflow = errors.New("Cannot step back before the first token")

// Walker errors
var errInvalidOperator = errors.New("Invalid operator")
var errUndefinedExpr = errors.New("Undefined expression")
var errUndefinedStmt = errors.New("Undefined statement")

// interpreterState stores the state of a single run
type interpreterState struct {
	source string
	stmts  []Stmt
	err    InputError

	logger   IPrinter
	stderr   io.Writer
	log      logrus.FieldLogger
	format   string
	colorize bool
}

func (s *interpreterState) setError(err error) {
	inputErr, ok := err.(InputError)
	if !ok {
		panic(err)
	}
	s.err = inputErr
	loc := inputErr.Loc()
	s.log.WithFields(logrus.Fields{
		"line": loc.Line,
		"col":  loc.Column,
	}).Debug(inputErr.Error())
}

// PrintErrors prints the recorded error with a caret under its location
func (s *interpreterState) PrintErrors() {
	if s.err == nil {
		return
	}
	s.logger.Fprintln(s.stderr, renderDiagnostic(s.source, s.err, s.colorize))
}

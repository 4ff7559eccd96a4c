package internal

import (
	"fmt"
	"strings"

	"github.com/labstack/gommon/color"
)

// FormatDiagnostic renders err as "[line:col] message" followed by the
// offending source line and a caret under the column.
func FormatDiagnostic(source string, err InputError) string {
	return renderDiagnostic(source, err, false)
}

func renderDiagnostic(source string, err InputError, colorize bool) string {
	loc := err.Loc()
	msg := fmt.Sprintf("[%d:%d] %s", loc.Line, loc.Column, err.Error())
	caret := strings.Repeat(" ", max(loc.Column-1, 0)) + "^"
	if colorize {
		msg = color.Red(msg)
		caret = color.Red(caret, color.B)
	}
	return msg + "\n" + sourceLine(source, loc.Line) + "\n" + caret
}

// sourceLine returns the 1-based line n of source with tabs expanded to the
// width the lexer counts them as. Carriage returns count as one column.
func sourceLine(source string, n int) string {
	lines := strings.Split(source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	line := strings.TrimSuffix(lines[n-1], "\r")
	line = strings.ReplaceAll(line, "\r", " ")
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
}

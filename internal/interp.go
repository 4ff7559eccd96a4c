package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Options controls how RunSource reports values and errors
type Options struct {
	Printer IPrinter
	// Stderr receives diagnostics through Printer.Fprintln, os.Stderr if nil
	Stderr io.Writer
	Logger logrus.FieldLogger
	// Format is the fmt verb used to print each value, "%v" if empty
	Format   string
	Colorize bool
}

// RunSourceWithPrinter runs source with default options
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return RunSource(source, Options{Printer: p})
}

// RunSource parses source as one unit and evaluates every statement, printing
// each value. The first error is printed as a diagnostic and stops the run.
func RunSource(source string, opts Options) bool {
	state := interpreterState{
		source:   source,
		logger:   opts.Printer,
		stderr:   opts.Stderr,
		log:      opts.Logger,
		format:   opts.Format,
		colorize: opts.Colorize,
	}
	if state.log == nil {
		state.log = logrus.StandardLogger()
	}
	if state.stderr == nil {
		state.stderr = os.Stderr
	}
	if state.format == "" {
		state.format = "%v"
	}

	stmts, err := NewParser(source).Parse()
	if err != nil {
		state.setError(err)
		state.PrintErrors()
		return false
	}
	state.stmts = stmts
	state.log.WithField("stmts", len(stmts)).Debug("parsed")

	walker := NewWalker()
	for _, stmt := range state.stmts {
		value, err := walker.Eval(stmt)
		if err != nil {
			state.setError(err)
			state.PrintErrors()
			return false
		}
		state.log.WithField("value", value).Debug("evaluated")
		state.logger.Println(fmt.Sprintf(state.format, value))
	}
	return true
}

// ParseTree parses source and returns its tree in prefix notation. On error
// the diagnostic is returned instead.
func ParseTree(source string) (string, bool) {
	stmts, err := NewParser(source).Parse()
	if err != nil {
		return FormatDiagnostic(source, err.(InputError)), false
	}
	return FormatTree(stmts), true
}

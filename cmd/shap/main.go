package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/shap/internal"
	"github.com/mliezun/shap/internal/config"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// printer writes values to out and diagnostics to the writer they are
// addressed to
type printer struct {
	out io.Writer
}

func (p printer) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(p.out, a...)
}

func (p printer) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (p printer) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// runner executes input units, either evaluating them or printing their trees
type runner struct {
	opts   internal.Options
	tree   bool
	stdout io.Writer
	stderr io.Writer
}

func newRunner(opts internal.Options, tree bool, stdout, stderr io.Writer) *runner {
	opts.Printer = printer{out: stdout}
	opts.Stderr = stderr
	return &runner{
		opts:   opts,
		tree:   tree,
		stdout: stdout,
		stderr: stderr,
	}
}

// runFile runs the file at path as one unit and returns the exit status
func (r *runner) runFile(path string) int {
	b, err := os.ReadFile(path)
	if err != nil {
		r.opts.Logger.Error(err)
		return 1
	}
	if !r.run(string(b)) {
		return 1
	}
	return 0
}

func (r *runner) run(source string) bool {
	if !r.tree {
		return internal.RunSource(source, r.opts)
	}
	out, ok := internal.ParseTree(source)
	if !ok {
		fmt.Fprintln(r.stderr, out)
		return false
	}
	fmt.Fprint(r.stdout, out)
	return true
}

type lineAction int

const (
	lineSkipped lineAction = iota
	lineRan
	lineQuit
)

// dispatch handles one REPL line. Only lines that ran belong in the history.
func (r *runner) dispatch(line string) lineAction {
	switch strings.TrimSpace(line) {
	case "":
		return lineSkipped
	case ":quit":
		return lineQuit
	}
	r.run(line)
	return lineRan
}

func main() {
	var (
		configPath, format, logLevel string
		colorize, tree               bool
	)
	flag.StringVar(&configPath, "config", "", "CUE configuration file")
	flag.StringVar(&format, "fmt", "", "result formatting verb (default from config, %v)")
	flag.StringVar(&logLevel, "log-level", "", "log level (default from config, warning)")
	flag.BoolVar(&colorize, "color", false, "colorize diagnostics")
	flag.BoolVar(&tree, "tree", false, "print parse trees instead of evaluating")
	flag.Parse()

	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		logrus.Fatal(err)
	}
	if format != "" {
		cfg.Format = format
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if colorize {
		cfg.Color = true
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	if cfg.Color {
		color.Enable()
	} else {
		color.Disable()
	}

	r := newRunner(internal.Options{
		Logger:   log,
		Format:   cfg.Format,
		Colorize: cfg.Color,
	}, tree, os.Stdout, os.Stderr)

	switch flag.NArg() {
	case 0:
		os.Exit(repl(cfg, r))
	case 1:
		os.Exit(r.runFile(flag.Arg(0)))
	default:
		fmt.Println("Usage: shap [flags] [/path/to/source.shap]")
		os.Exit(2)
	}
}

func repl(cfg config.Config, r *runner) int {
	fmt.Println(color.Green("shap REPL"))
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, cfg.History)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.opts.Logger.Error(err)
			}
			fmt.Println()
			return 0
		}

		switch r.dispatch(line) {
		case lineQuit:
			return 0
		case lineRan:
			ln.AppendHistory(line)
		}
	}
}

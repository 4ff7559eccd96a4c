package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mliezun/shap/internal"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		b   []byte
		err error
	)
	switch len(os.Args) {
	case 1:
		b, err = io.ReadAll(os.Stdin)
	case 2:
		b, err = os.ReadFile(os.Args[1])
	default:
		fmt.Println("Usage: shaplex [/path/to/source.shap]")
		os.Exit(2)
	}
	if err != nil {
		logrus.Fatal(err)
	}

	os.Exit(dump(string(b), os.Stdout, os.Stderr))
}

// dump writes one line per token with its location. A lexical error is
// reported as a diagnostic after the tokens scanned before it.
func dump(source string, stdout, stderr io.Writer) int {
	tokens, err := internal.NewLexer(source).Scan()
	for _, tk := range tokens {
		fmt.Fprintf(stdout, "%s\t%s\t%q\n", tk.Loc, tk.Type, tk.String())
	}
	if err != nil {
		fmt.Fprintln(stderr, internal.FormatDiagnostic(source, err.(internal.InputError)))
		return 1
	}
	return 0
}

package internal

import (
	"reflect"
	"testing"
)

func FuzzLex(f *testing.F) {
	f.Add("1 + 2;")
	f.Add("(3.5 * -x) % 2;\n\tis negative")
	f.Add("1 + @;")
	f.Fuzz(func(t *testing.T, s string) {
		first, firstErr := NewLexer(s).Scan()
		second, secondErr := NewLexer(s).Scan()
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("scanning %q twice gave %v and %v", s, first, second)
		}
		if (firstErr == nil) != (secondErr == nil) {
			t.Fatalf("scanning %q twice gave errors %v and %v", s, firstErr, secondErr)
		}
		for _, tk := range first {
			if tk.Loc.Line < 1 || tk.Loc.Column < 1 {
				t.Fatalf("scanning %q: token %v at invalid location %v", s, tk, tk.Loc)
			}
		}
	})
}

func FuzzParse(f *testing.F) {
	f.Add("1 + 2;")
	f.Add("- -(1 / 0);")
	f.Add("((1);")
	f.Fuzz(func(t *testing.T, s string) {
		stmts, err := NewParser(s).Parse()
		if err != nil {
			if _, ok := err.(InputError); !ok {
				t.Fatalf("parsing %q: error %v has no location", s, err)
			}
			return
		}
		w := NewWalker()
		for _, stmt := range stmts {
			if _, err := w.Eval(stmt); err != nil {
				t.Fatalf("evaluating %q: %v", s, err)
			}
		}
	})
}

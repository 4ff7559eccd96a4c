// Package config loads shap settings from CUE files.
package config

import (
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Config holds the settings of the shap binaries
type Config struct {
	Prompt   string
	History  string
	Color    bool
	LogLevel string
	Format   string
}

// schema is closed, so unknown fields are rejected
const schema = `
prompt?:   string
history?:  string
color?:    bool
logLevel?: "panic" | "fatal" | "error" | "warn" | "warning" | "info" | "debug" | "trace"
format?:   string
`

// file mirrors Config with optional fields so that absent values keep their
// defaults.
type file struct {
	Prompt   *string `json:"prompt"`
	History  *string `json:"history"`
	Color    *bool   `json:"color"`
	LogLevel *string `json:"logLevel"`
	Format   *string `json:"format"`
}

// Default returns the settings used when no file sets them
func Default() Config {
	return Config{
		Prompt:   ">> ",
		History:  ".shap_history",
		LogLevel: "warning",
		Format:   "%v",
	}
}

// Load reads every path in order on top of the defaults. Later files win.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if cfg, err = cfg.Merge(path, content); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Merge validates a CUE document against the schema and overlays the fields
// it sets onto cfg.
func (cfg Config) Merge(filename string, content []byte) (Config, error) {
	ctx := cuecontext.New()

	s := ctx.CompileString("close({" + schema + "})")
	if err := s.Err(); err != nil {
		return cfg, err
	}

	value := ctx.CompileBytes(content, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return cfg, err
	}

	unified := s.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cfg, err
	}

	var f file
	if err := unified.Decode(&f); err != nil {
		return cfg, err
	}

	if f.Prompt != nil {
		cfg.Prompt = *f.Prompt
	}
	if f.History != nil {
		cfg.History = *f.History
	}
	if f.Color != nil {
		cfg.Color = *f.Color
	}
	if f.LogLevel != nil {
		cfg.LogLevel = *f.LogLevel
	}
	if f.Format != nil {
		cfg.Format = *f.Format
	}
	return cfg, nil
}

// internal/report/registry.go

// Package report renders command results in one of several formats.
// Formats register themselves in init() blocks; dispatch is by name.
package report

import (
	"fmt"
	"io"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var writers = map[string]func(io.Writer, any) error{}

// Register installs a format handler (idempotent, last wins).
func Register(format string, fn func(io.Writer, any) error) { writers[format] = fn }

// Write renders payload in the requested format.
func Write(format string, w io.Writer, payload any) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Formats lists the registered format names for flag validation.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	return out
}

// core/gff/store.go
package gff

import (
	"bufio"
	"strings"
)

// DefaultDelimiter is the column delimiter of GFF/GTF files.
const DefaultDelimiter = "\t"

// Lines scans every line of path, comments included, and calls fn with the
// line (trailing newline stripped) and its 1-based number. fn returning a
// non-nil error stops the scan early.
func Lines(path string, fn func(line string, num int) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	// Attribute columns on dense annotations can run long; allow 16 MiB lines.
	const maxLine = 16 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	n := 0
	for sc.Scan() {
		n++
		if err := fn(strings.TrimRight(sc.Text(), "\r"), n); err != nil {
			return err
		}
	}
	return sc.Err()
}

// IsComment reports whether a line is a comment/header line.
func IsComment(line string) bool { return strings.HasPrefix(line, "#") }

// Each streams the column-split records of path in file order, skipping
// comment and blank lines. Records share no state between calls.
func Each(path, delim string, fn func(Record) error) error {
	if delim == "" {
		delim = DefaultDelimiter
	}
	return Lines(path, func(line string, num int) error {
		if line == "" || IsComment(line) {
			return nil
		}
		return fn(Record{Fields: strings.Split(line, delim), Raw: line, Line: num})
	})
}

// Load buffers every record of path in file order. A file with zero usable
// records is not an error; callers decide whether to warn.
func Load(path, delim string) ([]Record, error) {
	var recs []Record
	err := Each(path, delim, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Comments returns the comment/header lines of path in file order.
func Comments(path string) ([]string, error) {
	var out []string
	err := Lines(path, func(line string, _ int) error {
		if IsComment(line) {
			out = append(out, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

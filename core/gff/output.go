// core/gff/output.go
package gff

import (
	"bufio"
	"os"
)

// WriteFile creates path, hands a buffered writer to fn, and flushes and
// closes on every exit path. When fn (or the flush/close) fails the partial
// output is removed rather than left half-written.
func WriteFile(path string, fn func(w *bufio.Writer) error) (err error) {
	fh, cerr := os.Create(path)
	if cerr != nil {
		return cerr
	}

	defer func() {
		if err != nil {
			_ = fh.Close()
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(fh)
	if err = fn(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = fh.Close(); err != nil {
		return err
	}
	return nil
}

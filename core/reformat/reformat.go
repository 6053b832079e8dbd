// core/reformat/reformat.go
package reformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gffkit-core/attr"
	"gffkit-core/dialect"
	"gffkit-core/gff"
)

// ErrBadTargetFormat rejects reformat targets other than GFF3 or GTF before
// any output is written.
var ErrBadTargetFormat = errors.New("reformat: target format must be gff3 or gtf")

// Summary reports one reformatting pass. Dropped counts data lines below the
// 9-column threshold; they are skipped, not individually reported.
type Summary struct {
	Lines      int    `json:"lines_written"`
	Dropped    int    `json:"lines_dropped"`
	OutputPath string `json:"output_path,omitempty"`
}

// Reformatter rewrites a file's attribute columns into a canonical dialect,
// leaving all other columns untouched. The source dialect starts unset and
// is either supplied by the caller or committed by detection on first use.
type Reformatter struct {
	Delimiter string
	Detector  dialect.Detector

	dialect *dialect.Dialect
}

func New(delim string) *Reformatter {
	return &Reformatter{Delimiter: delim, Detector: dialect.NewDetector()}
}

// Dialect returns the committed source dialect, if any.
func (r *Reformatter) Dialect() (dialect.Dialect, bool) {
	if r.dialect == nil {
		return dialect.Dialect{}, false
	}
	return *r.dialect, true
}

// SetDialect pins the source dialect, bypassing detection.
func (r *Reformatter) SetDialect(d dialect.Dialect) { r.dialect = &d }

// Detect samples path and resolves its dialect. With commit true the result
// becomes the Reformatter's source dialect; with commit false this is a pure
// query and shared state is untouched.
func (r *Reformatter) Detect(path string, commit bool) (dialect.Report, []string, error) {
	rep, err := r.Detector.DetectFile(path, r.Delimiter)
	if err != nil {
		return dialect.Report{}, nil, err
	}
	d, warns := rep.Resolve()
	if commit {
		r.dialect = &d
	}
	return rep, warns, nil
}

// Reformat streams path into out, rewriting column 9 of every data line into
// the target syntax. Comments pass through verbatim; data lines keep columns
// 1–8 byte-for-byte. Original line order is preserved. The target is
// validated before the first write.
func (r *Reformatter) Reformat(path string, target dialect.Format, out io.Writer) (Summary, error) {
	var s Summary
	if target != dialect.GFF3Like && target != dialect.GTFLike {
		return s, fmt.Errorf("%w: got %s", ErrBadTargetFormat, target)
	}
	if r.dialect == nil {
		if _, _, err := r.Detect(path, true); err != nil {
			return s, err
		}
	}
	src := *r.dialect
	if src.Format == dialect.Unknown {
		return s, fmt.Errorf("reformat %s: %w", path, attr.ErrUnknownDialect)
	}

	delim := r.Delimiter
	if delim == "" {
		delim = gff.DefaultDelimiter
	}

	w := bufio.NewWriter(out)
	err := gff.Lines(path, func(line string, _ int) error {
		if gff.IsComment(line) {
			_, werr := w.WriteString(line + "\n")
			return werr
		}
		fields := strings.Split(line, delim)
		if len(fields) < gff.MinColumns {
			s.Dropped++
			return nil
		}
		m, perr := attr.Parse(fields[gff.ColAttributes], src)
		if perr != nil {
			return perr
		}
		col9, serr := attr.Serialize(m, target)
		if serr != nil {
			return serr
		}
		if _, werr := w.WriteString(strings.Join(fields[:gff.ColAttributes], delim) + delim + col9 + "\n"); werr != nil {
			return werr
		}
		s.Lines++
		return nil
	})
	if err != nil {
		return s, err
	}
	return s, w.Flush()
}

// ReformatFile is Reformat with managed output: the file is created only
// after the target validates, and a failed pass removes it instead of
// leaving a truncated result behind.
func (r *Reformatter) ReformatFile(path string, target dialect.Format, outPath string) (Summary, error) {
	var s Summary
	if target != dialect.GFF3Like && target != dialect.GTFLike {
		return s, fmt.Errorf("%w: got %s", ErrBadTargetFormat, target)
	}
	err := gff.WriteFile(outPath, func(w *bufio.Writer) error {
		var ferr error
		s, ferr = r.Reformat(path, target, w)
		return ferr
	})
	if err != nil {
		return Summary{}, err
	}
	s.OutputPath = outPath
	return s, nil
}

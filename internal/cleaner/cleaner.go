// internal/cleaner/cleaner.go

// Package cleaner drops organellar (or otherwise unwanted) regions from an
// annotation file: region-type records whose genome attribute matches an
// exclusion value mark their seqID, and every record on a marked seqID is
// removed. Comments always pass through.
package cleaner

import (
	"bufio"
	"sort"
	"strings"

	"gffkit-core/attr"
	"gffkit-core/dialect"
	"gffkit-core/gff"
)

// Info summarizes the genome attributes present in a file, used to decide
// what to exclude.
type Info struct {
	Count        int      `json:"count"`
	FeatureTypes []string `json:"feature_types"`
	Values       []string `json:"values"`
}

// Summary reports one cleaning pass.
type Summary struct {
	ExcludedSeqIDs []string `json:"excluded_seqids"`
	LinesWritten   int      `json:"lines_written"`
	OutputPath     string   `json:"output_path"`
}

// GenomeInfo scans path for records carrying a genome attribute and reports
// how many there are, on which feature types, and with which values.
func GenomeInfo(path, delim string, d dialect.Dialect) (Info, error) {
	fts := map[string]struct{}{}
	vals := map[string]struct{}{}
	info := Info{}
	err := gff.Each(path, delim, func(r gff.Record) error {
		if !r.HasAttributes() {
			return nil
		}
		m, perr := attr.Parse(r.Attributes(), d)
		if perr != nil {
			return perr
		}
		if v, ok := m.Get("genome"); ok {
			info.Count++
			fts[r.FeatureType()] = struct{}{}
			vals[v] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return Info{}, err
	}
	info.FeatureTypes = sorted(fts)
	info.Values = sorted(vals)
	return info, nil
}

// Clean writes a copy of path to outPath without the regions whose genome
// attribute matches an exclusion value, and without any record on those
// regions' seqIDs. Matching is case-insensitive. On failure the partial
// output is removed.
func Clean(path, delim string, d dialect.Dialect, exclude []string, regionType, outPath string) (Summary, error) {
	if regionType == "" {
		regionType = "region"
	}
	excludeSet := map[string]struct{}{}
	for _, e := range exclude {
		excludeSet[strings.ToLower(e)] = struct{}{}
	}

	// Pass 1: seqIDs of regions to exclude.
	seqids := map[string]struct{}{}
	err := gff.Each(path, delim, func(r gff.Record) error {
		if !r.HasAttributes() || !strings.EqualFold(r.FeatureType(), regionType) {
			return nil
		}
		m, perr := attr.Parse(r.Attributes(), d)
		if perr != nil {
			return perr
		}
		if v, ok := m.Get("genome"); ok {
			if _, drop := excludeSet[strings.ToLower(v)]; drop {
				seqids[r.SeqID()] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	// Pass 2: filtered copy.
	sum := Summary{ExcludedSeqIDs: sorted(seqids)}
	err = gff.WriteFile(outPath, func(w *bufio.Writer) error {
		return gff.Lines(path, func(line string, _ int) error {
			if gff.IsComment(line) {
				_, werr := w.WriteString(line + "\n")
				return werr
			}
			fields := strings.Split(line, delim)
			if len(fields) < gff.MinColumns {
				return nil
			}
			if _, drop := seqids[fields[gff.ColSeqID]]; drop {
				return nil
			}
			if _, werr := w.WriteString(line + "\n"); werr != nil {
				return werr
			}
			sum.LinesWritten++
			return nil
		})
	})
	if err != nil {
		return Summary{}, err
	}
	sum.OutputPath = outPath
	return sum, nil
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

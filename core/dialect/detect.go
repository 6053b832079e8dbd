// core/dialect/detect.go
package dialect

import (
	"errors"
	"math/rand"
	"regexp"
	"sort"
	"strings"

	"gffkit-core/gff"
)

// Subformat notes recorded while sampling. They explain comma handling and
// feed the separator override in Resolve.
const (
	SubCommaInQuotes = `',' inside quoted value`
	SubCommaInValues = `',' inside values with separator ';'`
	SubCommaAsMain   = `',' as main separator (unconfirmed)`
)

var (
	reQuotedComma  = regexp.MustCompile(`"[^"]*,[^"]*"`)
	reCommaBetween = regexp.MustCompile(`;[^;]*,[^;]*;`)
	reGTFAssign    = regexp.MustCompile(`\w+\s+"[^"]+"`)
)

// Detector samples attribute columns and infers the dialect in use.
//
// With Rand nil the sample is the first SampleSize eligible records, matching
// a head scan of the file. Supplying a Rand switches to reservoir sampling
// over the whole file; tests seed it for reproducible draws.
type Detector struct {
	SampleSize  int
	MaxExamples int
	Rand        *rand.Rand
}

// NewDetector returns a Detector with the stock sample bounds.
func NewDetector() Detector {
	return Detector{SampleSize: 100, MaxExamples: 5}
}

// Report aggregates the evidence gathered from one sample. Candidate slices
// are kept in canonical order (';' ',' tab; '=' space, then anything else
// sorted), so two reports over permutations of the same sample are equal.
type Report struct {
	Separators        []string `json:"separators"`
	Assigners         []string `json:"assigners"`
	Quoting           bool     `json:"quoting"`
	Subformats        []string `json:"subformats"`
	UnknownSeparators int      `json:"unknown_separators"`
	UnknownAssigners  int      `json:"unknown_assigners"`
	Examples          []string `json:"examples,omitempty"`
	Sampled           int      `json:"sampled"`
}

// eligible reports whether a record contributes to dialect evidence.
func eligible(r gff.Record) bool {
	return r.HasAttributes() && strings.TrimSpace(r.Attributes()) != ""
}

// Sample draws up to SampleSize eligible records.
func (d Detector) Sample(records []gff.Record) []gff.Record {
	limit := d.SampleSize
	if limit <= 0 {
		limit = 100
	}
	var out []gff.Record
	seen := 0
	for _, r := range records {
		if !eligible(r) {
			continue
		}
		seen++
		if len(out) < limit {
			out = append(out, r)
			continue
		}
		if d.Rand == nil {
			break
		}
		if j := d.Rand.Intn(seen); j < limit {
			out[j] = r
		}
	}
	return out
}

// Detect examines a pre-drawn sample. It is a pure function of the sample
// set: the aggregation is a commutative merge, so record order is irrelevant.
func (d Detector) Detect(records []gff.Record) Report {
	maxEx := d.MaxExamples
	if maxEx <= 0 {
		maxEx = 5
	}

	seps := map[string]bool{}
	assigns := map[string]bool{}
	subs := map[string]bool{}
	rep := Report{}

	for _, r := range d.Sample(records) {
		attrs := strings.TrimSpace(r.Attributes())
		rep.Sampled++

		foundSep := false
		if strings.Contains(attrs, ";") {
			seps[";"] = true
			foundSep = true
		}
		if strings.Contains(attrs, ",") {
			// Comma is ambiguous: embedded in quotes, a sub-separator
			// between semicolons, or genuinely the main separator.
			switch {
			case reQuotedComma.MatchString(attrs):
				subs[SubCommaInQuotes] = true
			case seps[";"] && reCommaBetween.MatchString(attrs):
				subs[SubCommaInValues] = true
			default:
				seps[","] = true
				subs[SubCommaAsMain] = true
			}
			foundSep = true
		}
		if strings.Contains(attrs, "\t") {
			seps["\t"] = true
			foundSep = true
		}
		if !foundSep {
			rep.UnknownSeparators++
			if len(rep.Examples) < maxEx {
				rep.Examples = append(rep.Examples, attrs)
			}
		}

		if strings.Contains(attrs, "=") {
			assigns["="] = true
		} else if reGTFAssign.MatchString(attrs) {
			assigns[" "] = true
			rep.Quoting = true
		} else {
			rep.UnknownAssigners++
			if len(rep.Examples) < maxEx {
				rep.Examples = append(rep.Examples, attrs)
			}
		}

		if strings.Contains(attrs, `"`) {
			rep.Quoting = true
		}
	}

	rep.Separators = canonical(seps, ";", ",", "\t")
	rep.Assigners = canonical(assigns, "=", " ")
	rep.Subformats = canonical(subs)
	return rep
}

// DetectFile streams path and examines a sample of its records. Head
// sampling stops reading once the sample is full; reservoir sampling scans
// the whole file.
func (d Detector) DetectFile(path, delim string) (Report, error) {
	limit := d.SampleSize
	if limit <= 0 {
		limit = 100
	}
	var sample []gff.Record
	seen := 0
	errStop := errors.New("sample full")
	err := gff.Each(path, delim, func(r gff.Record) error {
		if !eligible(r) {
			return nil
		}
		seen++
		if len(sample) < limit {
			sample = append(sample, r)
			return nil
		}
		if d.Rand == nil {
			return errStop
		}
		if j := d.Rand.Intn(seen); j < limit {
			sample[j] = r
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return Report{}, err
	}
	// The sample is already drawn; detect over it without re-sampling.
	full := Detector{SampleSize: len(sample) + 1, MaxExamples: d.MaxExamples}
	return full.Detect(sample), nil
}

// Resolve applies the deterministic tie-break over the aggregated candidates
// (';' > ',' > tab for separators, '=' > space for assigners) and returns
// the dialect plus any confirmation warnings. An unresolvable report yields
// Format Unknown with diagnostic separator/assigner text.
func (r Report) Resolve() (Dialect, []string) {
	var d Dialect
	var warns []string

	hasSep := func(s string) bool {
		for _, c := range r.Separators {
			if c == s {
				return true
			}
		}
		return false
	}
	hasAssign := func(s string) bool {
		for _, c := range r.Assigners {
			if c == s {
				return true
			}
		}
		return false
	}
	embedded := false
	for _, sf := range r.Subformats {
		if strings.Contains(sf, "inside") {
			embedded = true
		}
	}

	switch {
	case hasAssign("=") && !hasAssign(" "):
		d.Format = GFF3Like
		d.Assigner = "="
	case hasAssign(" ") && r.Quoting:
		d.Format = GTFLike
		d.Assigner = " "
	default:
		d.Format = Unknown
		d.Assigner = diagnostic(r.Assigners)
		warns = append(warns, "could not determine assigner; options: "+d.Assigner)
	}

	switch {
	case hasSep(";"):
		d.Separator = ";"
	case hasSep(","):
		if embedded {
			d.Separator = ";"
			warns = append(warns, "',' found inside attribute values; using ';' as main separator")
		} else {
			d.Separator = ","
			warns = append(warns, "no ';' found; treating ',' as main separator, please verify")
		}
	case hasSep("\t"):
		d.Separator = "\t"
	default:
		d.Format = Unknown
		d.Separator = diagnostic(r.Separators)
		warns = append(warns, "could not determine separator; options: "+d.Separator)
	}

	d.Quoting = r.Quoting
	return d, warns
}

// canonical orders set members by the preferred sequence, then sorts the rest.
func canonical(set map[string]bool, preferred ...string) []string {
	var out []string
	for _, p := range preferred {
		if set[p] {
			out = append(out, p)
			delete(set, p)
		}
	}
	rest := make([]string, 0, len(set))
	for s := range set {
		rest = append(rest, s)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func diagnostic(candidates []string) string {
	if len(candidates) == 0 {
		return "?"
	}
	return strings.Join(candidates, ", and/or ")
}

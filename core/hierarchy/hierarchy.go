// core/hierarchy/hierarchy.go
package hierarchy

import (
	"bufio"
	"io"
	"strings"

	"gffkit-core/attr"
	"gffkit-core/dialect"
	"gffkit-core/gff"
)

// Class is the completeness verdict for one selected gene.
type Class int

const (
	MissingTranscript Class = iota
	MissingCDS
	Complete
)

func (c Class) String() string {
	switch c {
	case Complete:
		return "complete"
	case MissingCDS:
		return "missing-CDS"
	default:
		return "missing-transcript"
	}
}

// Summary counts the classification outcome. Complete + MissingTranscripts +
// MissingCDS always equals Total.
type Summary struct {
	Total              int `json:"total"`
	MissingTranscripts int `json:"missing_transcripts"`
	MissingCDS         int `json:"missing_cds"`
	Complete           int `json:"complete"`
}

// EmitCounts reports what a filtered write produced.
type EmitCounts struct {
	Genes       int    `json:"genes_written"`
	Transcripts int    `json:"transcripts_written"`
	CDS         int    `json:"cds_written"`
	OutputPath  string `json:"output_path,omitempty"`
}

// Builder reconstructs gene→transcript→CDS hierarchies for genes selected by
// a biotype marker substring on the root feature type.
type Builder struct {
	BiotypeMarker string
	RootType      string
	Dialect       dialect.Dialect
}

func NewBuilder() *Builder {
	return &Builder{
		BiotypeMarker: "protein_coding",
		RootType:      "gene",
		Dialect:       dialect.Default(),
	}
}

// Result is the reconstructed graph for one invocation.
type Result struct {
	Summary Summary `json:"summary"`

	// Genes without an ID attribute; warned about, never fatal.
	SkippedNoID int `json:"skipped_no_id,omitempty"`

	classes        map[string]Class
	transcripts    map[string]map[string]bool // gene → transcript set
	transcriptGene map[string]string
	cdsParents     map[string]bool // every CDS parent seen, resolved at classify time
}

// Class returns the verdict for a selected gene ID.
func (r *Result) Class(geneID string) (Class, bool) {
	c, ok := r.classes[geneID]
	return c, ok
}

func (r *Result) complete(geneID string) bool {
	return r.classes[geneID] == Complete
}

// Build scans the records twice: once for biotype-gated roots, once for
// their transcripts and CDS children. Children may appear in any order
// relative to their parents; CDS parent links are resolved only at
// classification, so a CDS line before its mRNA still counts. A transcript
// pointing outside the gated gene set, or a CDS pointing at an unregistered
// transcript, is silently excluded.
func (b *Builder) Build(records []gff.Record) (*Result, error) {
	marker := strings.ToLower(b.BiotypeMarker)
	root := strings.ToLower(b.RootType)

	res := &Result{
		classes:        map[string]Class{},
		transcripts:    map[string]map[string]bool{},
		transcriptGene: map[string]string{},
		cdsParents:     map[string]bool{},
	}

	// Pass 1: biotype-gated root genes keyed by ID.
	for _, rec := range records {
		if !rec.HasAttributes() || strings.ToLower(rec.FeatureType()) != root {
			continue
		}
		if !strings.Contains(strings.ToLower(rec.Attributes()), marker) {
			continue
		}
		m, err := attr.Parse(rec.Attributes(), b.Dialect)
		if err != nil {
			return nil, err
		}
		id, ok := m.Get("id")
		if !ok || id == "" {
			res.SkippedNoID++
			continue
		}
		if _, seen := res.classes[id]; !seen {
			res.classes[id] = MissingTranscript
			res.transcripts[id] = map[string]bool{}
		}
	}

	// Pass 2: register transcripts under gated genes, note CDS parents.
	for _, rec := range records {
		if !rec.HasAttributes() {
			continue
		}
		ft := strings.ToLower(rec.FeatureType())
		switch ft {
		case "mrna", "transcript":
			m, err := attr.Parse(rec.Attributes(), b.Dialect)
			if err != nil {
				return nil, err
			}
			parent, ok := m.Get("parent")
			if !ok {
				continue
			}
			if _, gated := res.transcripts[parent]; !gated {
				continue
			}
			id, ok := m.Get("id")
			if !ok || id == "" {
				continue
			}
			res.transcripts[parent][id] = true
			res.transcriptGene[id] = parent
		case "cds":
			m, err := attr.Parse(rec.Attributes(), b.Dialect)
			if err != nil {
				return nil, err
			}
			if parent, ok := m.Get("parent"); ok && parent != "" {
				res.cdsParents[parent] = true
			}
		}
	}

	// Classify.
	res.Summary.Total = len(res.classes)
	for gene, ts := range res.transcripts {
		switch {
		case len(ts) == 0:
			res.classes[gene] = MissingTranscript
			res.Summary.MissingTranscripts++
		case !anyCDS(ts, res.cdsParents):
			res.classes[gene] = MissingCDS
			res.Summary.MissingCDS++
		default:
			res.classes[gene] = Complete
			res.Summary.Complete++
		}
	}
	return res, nil
}

// WriteComplete emits the comment lines of path, then only the gene,
// transcript and CDS records of complete hierarchies, in original order and
// with original line text verbatim.
func (b *Builder) WriteComplete(path string, records []gff.Record, res *Result, out io.Writer) (EmitCounts, error) {
	var counts EmitCounts
	w := bufio.NewWriter(out)

	comments, err := gff.Comments(path)
	if err != nil {
		return counts, err
	}
	for _, c := range comments {
		if _, err := w.WriteString(c + "\n"); err != nil {
			return counts, err
		}
	}

	root := strings.ToLower(b.RootType)
	for _, rec := range records {
		if !rec.HasAttributes() {
			continue
		}
		ft := strings.ToLower(rec.FeatureType())
		m, perr := attr.Parse(rec.Attributes(), b.Dialect)
		if perr != nil {
			return counts, perr
		}
		keep := false
		switch ft {
		case root:
			if id, ok := m.Get("id"); ok && res.complete(id) {
				keep = true
				counts.Genes++
			}
		case "mrna", "transcript":
			if parent, ok := m.Get("parent"); ok && res.complete(parent) {
				keep = true
				counts.Transcripts++
			}
		case "cds":
			if parent, ok := m.Get("parent"); ok {
				if gene, reg := res.transcriptGene[parent]; reg && res.complete(gene) {
					keep = true
					counts.CDS++
				}
			}
		}
		if !keep {
			continue
		}
		if _, err := w.WriteString(rec.Raw + "\n"); err != nil {
			return counts, err
		}
	}
	return counts, w.Flush()
}

// WriteCompleteFile wraps WriteComplete with managed output: on failure the
// partial file is removed.
func (b *Builder) WriteCompleteFile(path string, records []gff.Record, res *Result, outPath string) (EmitCounts, error) {
	var counts EmitCounts
	err := gff.WriteFile(outPath, func(w *bufio.Writer) error {
		var werr error
		counts, werr = b.WriteComplete(path, records, res, w)
		return werr
	})
	if err != nil {
		return EmitCounts{}, err
	}
	counts.OutputPath = outPath
	return counts, nil
}

func anyCDS(transcripts map[string]bool, cdsParents map[string]bool) bool {
	for t := range transcripts {
		if cdsParents[t] {
			return true
		}
	}
	return false
}

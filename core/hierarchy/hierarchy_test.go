// core/hierarchy/hierarchy_test.go
package hierarchy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gffkit-core/gff"
)

func line(ft, attrs string) string {
	return strings.Join([]string{"chr1", "RefSeq", ft, "1", "100", ".", "+", ".", attrs}, "\t")
}

func load(t *testing.T, lines ...string) (string, []gff.Record) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.gff")
	data := "##gff-version 3\n" + strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write tmp: %v", err)
	}
	recs, err := gff.Load(path, "\t")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return path, recs
}

func TestCompleteHierarchy(t *testing.T) {
	_, recs := load(t,
		line("gene", "ID=g1;gene_biotype=protein_coding"),
		line("mRNA", "ID=t1;Parent=g1"),
		line("CDS", "ID=c1;Parent=t1"),
	)
	res, err := NewBuilder().Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := Summary{Total: 1, MissingTranscripts: 0, MissingCDS: 0, Complete: 1}
	if res.Summary != want {
		t.Fatalf("summary %+v", res.Summary)
	}
	if c, ok := res.Class("g1"); !ok || c != Complete {
		t.Fatalf("class %v %v", c, ok)
	}
}

func TestGeneWithoutChildren(t *testing.T) {
	_, recs := load(t, line("gene", "ID=g2;gene_biotype=protein_coding"))
	res, err := NewBuilder().Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Summary.MissingTranscripts != 1 || res.Summary.Complete != 0 {
		t.Fatalf("summary %+v", res.Summary)
	}
}

func TestTranscriptWithoutCDS(t *testing.T) {
	_, recs := load(t,
		line("gene", "ID=g1;gene_biotype=protein_coding"),
		line("transcript", "ID=t1;Parent=g1"),
	)
	res, err := NewBuilder().Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Summary.MissingCDS != 1 {
		t.Fatalf("summary %+v", res.Summary)
	}
}

// Classes partition the gated gene set.
func TestSummaryPartitions(t *testing.T) {
	_, recs := load(t,
		line("gene", "ID=g1;gene_biotype=protein_coding"),
		line("mRNA", "ID=t1;Parent=g1"),
		line("CDS", "Parent=t1"),
		line("gene", "ID=g2;gene_biotype=protein_coding"),
		line("gene", "ID=g3;gene_biotype=protein_coding"),
		line("mRNA", "ID=t3;Parent=g3"),
		line("gene", "ID=g4;gene_biotype=lncRNA"),
	)
	res, err := NewBuilder().Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	s := res.Summary
	if s.Total != 3 {
		t.Fatalf("biotype gate failed: %+v", s)
	}
	if s.Complete+s.MissingTranscripts+s.MissingCDS != s.Total {
		t.Fatalf("classes must partition: %+v", s)
	}
}

// A CDS appearing before its mRNA still resolves.
func TestChildOrderIndependence(t *testing.T) {
	_, recs := load(t,
		line("CDS", "Parent=t1"),
		line("gene", "ID=g1;gene_biotype=protein_coding"),
		line("mRNA", "ID=t1;Parent=g1"),
	)
	res, err := NewBuilder().Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Summary.Complete != 1 {
		t.Fatalf("order-sensitive build: %+v", res.Summary)
	}
}

// Orphans referencing genes or transcripts outside the gate are dropped
// silently, not reported.
func TestOrphansAreSilentlyExcluded(t *testing.T) {
	_, recs := load(t,
		line("gene", "ID=g1;gene_biotype=protein_coding"),
		line("mRNA", "ID=tx;Parent=other_gene"),
		line("CDS", "Parent=unregistered"),
	)
	res, err := NewBuilder().Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Summary.Total != 1 || res.Summary.MissingTranscripts != 1 {
		t.Fatalf("summary %+v", res.Summary)
	}
}

func TestGeneMissingIDIsWarnedAndSkipped(t *testing.T) {
	_, recs := load(t, line("gene", "gene_biotype=protein_coding;Name=anon"))
	res, err := NewBuilder().Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Summary.Total != 0 || res.SkippedNoID != 1 {
		t.Fatalf("summary %+v skipped %d", res.Summary, res.SkippedNoID)
	}
}

func TestWriteCompleteEmitsVerbatim(t *testing.T) {
	path, recs := load(t,
		line("gene", "ID=g1;gene_biotype=protein_coding"),
		line("mRNA", "ID=t1;Parent=g1"),
		line("CDS", "ID=c1;Parent=t1"),
		line("gene", "ID=g2;gene_biotype=protein_coding"), // incomplete, excluded
		line("exon", "ID=e1;Parent=t1"),                   // not part of the hierarchy
	)
	b := NewBuilder()
	res, err := b.Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var out bytes.Buffer
	counts, err := b.WriteComplete(path, recs, res, &out)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if counts.Genes != 1 || counts.Transcripts != 1 || counts.CDS != 1 {
		t.Fatalf("counts %+v", counts)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if lines[0] != "##gff-version 3" {
		t.Fatalf("comments must lead: %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got %q", lines)
	}
	if lines[1] != line("gene", "ID=g1;gene_biotype=protein_coding") {
		t.Fatalf("gene line not verbatim: %q", lines[1])
	}
}

func TestWriteCompleteFileCleansUpOnFailure(t *testing.T) {
	path, recs := load(t, line("gene", "ID=g1;gene_biotype=protein_coding"))
	b := NewBuilder()
	res, err := b.Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	outPath := filepath.Join(t.TempDir(), "out.gff")
	counts, err := b.WriteCompleteFile(path, recs, res, outPath)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if counts.OutputPath != outPath || counts.Genes != 0 {
		t.Fatalf("counts %+v", counts)
	}
}

func TestCustomBiotypeMarker(t *testing.T) {
	_, recs := load(t,
		line("gene", "ID=g1;gene_biotype=lncRNA"),
		line("gene", "ID=g2;gene_biotype=protein_coding"),
	)
	b := NewBuilder()
	b.BiotypeMarker = "lncRNA"
	res, err := b.Build(recs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Summary.Total != 1 {
		t.Fatalf("marker gate: %+v", res.Summary)
	}
	if _, ok := res.Class("g2"); ok {
		t.Fatalf("g2 must not be selected")
	}
}

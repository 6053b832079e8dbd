// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGFF(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.gff")
	data := "##gff-version 3\n" + strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func row(ft, attrs string) string {
	return strings.Join([]string{"chr1", "RefSeq", ft, "1", "100", ".", "+", ".", attrs}, "\t")
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestDetectCommand(t *testing.T) {
	path := writeGFF(t, row("gene", "ID=gene1;Name=foo"))
	code, out, _ := run(t, "detect", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "GFF3-like")
}

func TestDetectJSONOutput(t *testing.T) {
	path := writeGFF(t, row("gene", "ID=gene1;Name=foo"))
	code, out, _ := run(t, "detect", path, "--output", "json")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"separator": ";"`)
}

func TestDetectMissingFile(t *testing.T) {
	code, _, _ := run(t, "detect", filepath.Join(t.TempDir(), "nope.gff"))
	assert.Equal(t, 3, code)
}

func TestReformatCommand(t *testing.T) {
	path := writeGFF(t, row("gene", "ID=gene1;Name=foo"))
	outPath := filepath.Join(t.TempDir(), "out.gtf")
	code, out, _ := run(t, "reformat", path, "--to", "gtf", "-o", outPath)
	require.Equal(t, 0, code, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ID "gene1"; Name "foo";`)
}

func TestReformatBadTargetIsUsageError(t *testing.T) {
	path := writeGFF(t, row("gene", "ID=gene1"))
	code, _, _ := run(t, "reformat", path, "--to", "bed")
	assert.Equal(t, 2, code)
}

func TestFilterCommand(t *testing.T) {
	path := writeGFF(t,
		row("gene", "ID=g1;gene_biotype=protein_coding"),
		row("mRNA", "ID=t1;Parent=g1"),
		row("CDS", "ID=c1;Parent=t1"),
	)
	code, out, _ := run(t, "filter", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Genes with complete hierarchy")
	assert.Contains(t, out, ": 1")
}

func TestFilterWritesCompleteFile(t *testing.T) {
	path := writeGFF(t,
		row("gene", "ID=g1;gene_biotype=protein_coding"),
		row("mRNA", "ID=t1;Parent=g1"),
		row("CDS", "ID=c1;Parent=t1"),
		row("gene", "ID=g2;gene_biotype=protein_coding"),
	)
	outPath := filepath.Join(t.TempDir(), "complete.gff")
	code, _, _ := run(t, "filter", path, "-o", outPath)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID=g1")
	assert.NotContains(t, string(data), "ID=g2")
}

func TestInfoCommand(t *testing.T) {
	path := writeGFF(t,
		row("gene", "ID=g1;Name=foo"),
		row("mRNA", "ID=t1;Parent=g1"),
	)
	code, out, _ := run(t, "info", path, "--peek", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "gene, mRNA")
	assert.Contains(t, out, "Attribute keys for \"gene\"")
	assert.Contains(t, out, "First lines:")
}

func TestDiffCommand(t *testing.T) {
	a := writeGFF(t, row("gene", "ID=g1;Name=x"))
	b := writeGFF(t, row("gene", "ID=g1;locus_tag=L1"))
	code, out, _ := run(t, "diff", "one="+a, "two="+b)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Common feature types in all files: gene")
	assert.Contains(t, out, "Attributes only in one: Name")
}

func TestDiffBadArgIsUsageError(t *testing.T) {
	code, _, _ := run(t, "diff", "notlabeled", "x=y")
	assert.Equal(t, 2, code)
}

func TestCleanCommand(t *testing.T) {
	lines := []string{
		row("region", "ID=r1;genome=chromosome"),
		strings.Join([]string{"MT", "RefSeq", "region", "1", "10", ".", "+", ".", "ID=r2;genome=mitochondrion"}, "\t"),
		strings.Join([]string{"MT", "RefSeq", "gene", "1", "10", ".", "+", ".", "ID=g2"}, "\t"),
	}
	path := writeGFF(t, lines...)
	outPath := filepath.Join(t.TempDir(), "out.gff")
	code, out, _ := run(t, "clean", path, "-x", "mitochondrion", "-o", outPath)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Excluded seq IDs : MT")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "MT\t")
}

func TestCleanInfoModeWithoutExclude(t *testing.T) {
	path := writeGFF(t, row("region", "ID=r1;genome=chromosome"))
	code, out, _ := run(t, "clean", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "chromosome")
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	code, _, _ := run(t, "detect", "--bogus")
	assert.Equal(t, 2, code)
}

func TestMissingArgsIsUsageError(t *testing.T) {
	code, _, _ := run(t, "detect")
	assert.Equal(t, 2, code)
}

// internal/report/report_test.go
package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gffkit-core/dialect"
	"gffkit-core/hierarchy"
)

func detection() Detection {
	return Detection{
		Report: dialect.Report{
			Separators: []string{";"},
			Assigners:  []string{"="},
			Sampled:    3,
		},
		Dialect:  dialect.Dialect{Separator: ";", Assigner: "=", Format: dialect.GFF3Like},
		Warnings: []string{"check the file"},
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	var out bytes.Buffer
	err := Write("tsv", &out, detection())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tsv")
}

func TestTextDetection(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(FormatText, &out, detection()))
	s := out.String()
	assert.Contains(t, s, "GFF3-like")
	assert.Contains(t, s, "Resolved separator     : ;")
	assert.Contains(t, s, "!!! check the file")
}

func TestJSONRoundTrips(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(FormatJSON, &out, detection()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	d := decoded["dialect"].(map[string]any)
	assert.Equal(t, ";", d["separator"])
	assert.Equal(t, "GFF3-like", d["format"])
}

func TestYAMLUsesJSONKeyNames(t *testing.T) {
	var out bytes.Buffer
	payload := Hierarchy{
		Biotype: "protein_coding",
		Summary: hierarchy.Summary{Total: 2, Complete: 1, MissingCDS: 1},
	}
	require.NoError(t, Write(FormatYAML, &out, payload))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	sum := decoded["summary"].(map[string]any)
	assert.Equal(t, 2, sum["total"])
	assert.Equal(t, 1, sum["missing_cds"])
}

func TestTextHierarchyHasEmission(t *testing.T) {
	var out bytes.Buffer
	payload := Hierarchy{
		Biotype: "protein_coding",
		Summary: hierarchy.Summary{Total: 1, Complete: 1},
		Emitted: &hierarchy.EmitCounts{Genes: 1, Transcripts: 2, CDS: 3, OutputPath: "out.gff"},
	}
	require.NoError(t, Write(FormatText, &out, payload))
	s := out.String()
	assert.Contains(t, s, "Genes written")
	assert.Contains(t, s, "out.gff")
}

func TestTextRejectsUnknownPayload(t *testing.T) {
	var out bytes.Buffer
	err := Write(FormatText, &out, struct{ X int }{1})
	require.Error(t, err)
}

func TestFormatsRegistered(t *testing.T) {
	got := Formats()
	for _, want := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.Contains(t, got, want)
	}
}

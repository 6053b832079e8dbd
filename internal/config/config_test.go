// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "\t", c.Delimiter)
	assert.Equal(t, ";", c.Separator)
	assert.Equal(t, "=", c.Assigner)
	assert.Equal(t, 100, c.MaxSampleSize)
	assert.Equal(t, "protein_coding", c.BiotypeMarker)
	assert.Equal(t, "gff3", c.TargetFormat)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gffkit.yaml")
	data := "max-sample-size: 25\nbiotype-marker: lncRNA\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, c.MaxSampleSize)
	assert.Equal(t, "lncRNA", c.BiotypeMarker)
	// untouched keys keep their defaults
	assert.Equal(t, ";", c.Separator)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max-sample-size: [unclosed"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

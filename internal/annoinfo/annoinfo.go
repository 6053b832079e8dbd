// internal/annoinfo/annoinfo.go

// Package annoinfo inventories annotation files: unique sources, feature
// types, feature types per source, and the attribute keys of a chosen
// feature type. It feeds the info and diff commands.
package annoinfo

import (
	"sort"
	"strings"

	"gffkit-core/attr"
	"gffkit-core/dialect"
	"gffkit-core/gff"
)

// Sources returns the unique values of column 2, sorted.
func Sources(path, delim string) ([]string, error) {
	set := map[string]struct{}{}
	err := gff.Each(path, delim, func(r gff.Record) error {
		if len(r.Fields) >= 2 {
			set[r.Source()] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sorted(set), nil
}

// FeatureTypes returns the unique values of column 3, sorted.
func FeatureTypes(path, delim string) ([]string, error) {
	set := map[string]struct{}{}
	err := gff.Each(path, delim, func(r gff.Record) error {
		if len(r.Fields) >= 3 {
			set[r.FeatureType()] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sorted(set), nil
}

// FeatureTypesBySource groups the feature types seen under each source.
func FeatureTypesBySource(path, delim string) (map[string][]string, error) {
	sets := map[string]map[string]struct{}{}
	err := gff.Each(path, delim, func(r gff.Record) error {
		if len(r.Fields) < 3 {
			return nil
		}
		src := r.Source()
		if sets[src] == nil {
			sets[src] = map[string]struct{}{}
		}
		sets[src][r.FeatureType()] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(sets))
	for src, fts := range sets {
		out[src] = sorted(fts)
	}
	return out, nil
}

// AttributeKeys extracts the unique attribute keys of records with the given
// feature type (case-insensitive), sorted. Keys keep the casing of their
// first appearance.
func AttributeKeys(path, delim, featuretype string, d dialect.Dialect) ([]string, error) {
	want := strings.ToLower(featuretype)
	set := map[string]struct{}{}
	err := gff.Each(path, delim, func(r gff.Record) error {
		if !r.HasAttributes() || strings.ToLower(r.FeatureType()) != want {
			return nil
		}
		m, perr := attr.Parse(r.Attributes(), d)
		if perr != nil {
			return perr
		}
		for _, k := range m.Keys() {
			set[k] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sorted(set), nil
}

// Peek returns the first n non-comment lines, for eyeballing a file.
func Peek(path string, n int) ([]string, error) {
	var out []string
	err := gff.Lines(path, func(line string, _ int) error {
		if gff.IsComment(line) || line == "" {
			return nil
		}
		out = append(out, line)
		if len(out) >= n {
			return errEnough
		}
		return nil
	})
	if err != nil && err != errEnough {
		return nil, err
	}
	return out, nil
}

var errEnough = errStop("peek done")

type errStop string

func (e errStop) Error() string { return string(e) }

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

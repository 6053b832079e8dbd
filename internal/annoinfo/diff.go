// internal/annoinfo/diff.go
package annoinfo

import (
	"sort"

	"gffkit-core/dialect"
)

// Labeled names one input of a cross-file comparison.
type Labeled struct {
	Label string
	Path  string
}

// DiffReport compares feature types across files, then attribute keys per
// common feature type. Unique maps are keyed by input label.
type DiffReport struct {
	Labels             []string            `json:"labels"`
	CommonFeatureTypes []string            `json:"common_feature_types"`
	UniqueFeatureTypes map[string][]string `json:"unique_feature_types,omitempty"`
	Attributes         []FeatureAttrDiff   `json:"attributes"`
}

// FeatureAttrDiff is the attribute-key comparison for one common feature type.
type FeatureAttrDiff struct {
	FeatureType string              `json:"feature_type"`
	Common      []string            `json:"common"`
	Unique      map[string][]string `json:"unique,omitempty"`
}

// Diff builds the common/unique partition over two or more labeled files.
// Every observed value lands either in the common set or in exactly the
// unique sets of the files that carry it.
func Diff(inputs []Labeled, delim string, d dialect.Dialect) (DiffReport, error) {
	rep := DiffReport{UniqueFeatureTypes: map[string][]string{}}

	perFile := make([]map[string]struct{}, len(inputs))
	for i, in := range inputs {
		rep.Labels = append(rep.Labels, in.Label)
		fts, err := FeatureTypes(in.Path, delim)
		if err != nil {
			return DiffReport{}, err
		}
		perFile[i] = toSet(fts)
	}

	common := intersect(perFile)
	rep.CommonFeatureTypes = sorted(common)
	for i, in := range inputs {
		if u := subtract(perFile[i], common); len(u) > 0 {
			rep.UniqueFeatureTypes[in.Label] = sorted(u)
		}
	}

	for _, ft := range rep.CommonFeatureTypes {
		attrSets := make([]map[string]struct{}, len(inputs))
		for i, in := range inputs {
			keys, err := AttributeKeys(in.Path, delim, ft, d)
			if err != nil {
				return DiffReport{}, err
			}
			attrSets[i] = toSet(keys)
		}
		fd := FeatureAttrDiff{
			FeatureType: ft,
			Common:      sorted(intersect(attrSets)),
			Unique:      map[string][]string{},
		}
		commonAttrs := intersect(attrSets)
		for i, in := range inputs {
			if u := subtract(attrSets[i], commonAttrs); len(u) > 0 {
				fd.Unique[in.Label] = sorted(u)
			}
		}
		if len(fd.Unique) == 0 {
			fd.Unique = nil
		}
		rep.Attributes = append(rep.Attributes, fd)
	}
	sort.Slice(rep.Attributes, func(i, j int) bool {
		return rep.Attributes[i].FeatureType < rep.Attributes[j].FeatureType
	})
	return rep, nil
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}

func intersect(sets []map[string]struct{}) map[string]struct{} {
	if len(sets) == 0 {
		return map[string]struct{}{}
	}
	out := map[string]struct{}{}
	for s := range sets[0] {
		in := true
		for _, other := range sets[1:] {
			if _, ok := other[s]; !ok {
				in = false
				break
			}
		}
		if in {
			out[s] = struct{}{}
		}
	}
	return out
}

func subtract(a, b map[string]struct{}) map[string]struct{} {
	out := map[string]struct{}{}
	for s := range a {
		if _, ok := b[s]; !ok {
			out[s] = struct{}{}
		}
	}
	return out
}

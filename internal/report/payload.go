// internal/report/payload.go
package report

import (
	"gffkit-core/dialect"
	"gffkit-core/hierarchy"
	"gffkit-core/reformat"
)

// Detection is the payload of the detect command.
type Detection struct {
	Report   dialect.Report  `json:"report"`
	Dialect  dialect.Dialect `json:"dialect"`
	Warnings []string        `json:"warnings,omitempty"`
}

// Reformat is the payload of the reformat command.
type Reformat struct {
	Target  string           `json:"target"`
	Dialect dialect.Dialect  `json:"source_dialect"`
	Summary reformat.Summary `json:"summary"`
}

// Hierarchy is the payload of the filter command.
type Hierarchy struct {
	Biotype     string                `json:"biotype"`
	Summary     hierarchy.Summary     `json:"summary"`
	SkippedNoID int                   `json:"skipped_no_id,omitempty"`
	Emitted     *hierarchy.EmitCounts `json:"emitted,omitempty"`
}

// Inventory is the payload of the info command.
type Inventory struct {
	Path          string              `json:"path"`
	Sources       []string            `json:"sources"`
	FeatureTypes  []string            `json:"feature_types"`
	BySource      map[string][]string `json:"feature_types_by_source"`
	AttributeFor  string              `json:"attribute_featuretype,omitempty"`
	AttributeKeys []string            `json:"attribute_keys,omitempty"`
	Peek          []string            `json:"peek,omitempty"`
}

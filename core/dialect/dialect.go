// core/dialect/dialect.go
package dialect

import "fmt"

// Format classifies the attribute-column encoding family.
type Format int

const (
	Unknown Format = iota
	GFF3Like
	GTFLike
)

func (f Format) String() string {
	switch f {
	case GFF3Like:
		return "GFF3-like"
	case GTFLike:
		return "GTF-like"
	default:
		return "Unknown"
	}
}

// MarshalText lets reports serialize the family by name.
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// ParseFormat resolves a user-supplied target format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "gff3", "GFF3", "gff", "GFF":
		return GFF3Like, nil
	case "gtf", "GTF":
		return GTFLike, nil
	}
	return Unknown, fmt.Errorf("unknown format %q (want gff3 or gtf)", s)
}

// Dialect describes how one attribute column encodes key/value pairs.
// When Format is Unknown, Separator and Assigner hold a diagnostic join of
// the observed candidates and must not be used as parsing tokens.
type Dialect struct {
	Separator string `json:"separator"`
	Assigner  string `json:"assigner"`
	Quoting   bool   `json:"quoting"`
	Format    Format `json:"format"`
}

// Default is the deliberate fallback for well-formed RefSeq-style GFF3.
func Default() Dialect {
	return Dialect{Separator: ";", Assigner: "=", Quoting: false, Format: GFF3Like}
}

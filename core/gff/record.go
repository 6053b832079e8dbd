// core/gff/record.go
package gff

// Column indices (0-based) of the standard 9-column annotation layout.
const (
	ColSeqID = iota
	ColSource
	ColFeatureType
	ColStart
	ColEnd
	ColScore
	ColStrand
	ColPhase
	ColAttributes
)

// MinColumns is the field count required for an attribute column to exist.
const MinColumns = 9

// Record is one non-comment annotation line split on the column delimiter.
// Raw keeps the original line text so filtered output can be written back
// verbatim. Records are read-only after loading.
type Record struct {
	Fields []string
	Raw    string
	Line   int
}

// HasAttributes reports whether the record carries an attribute column.
func (r Record) HasAttributes() bool { return len(r.Fields) >= MinColumns }

func (r Record) SeqID() string {
	if len(r.Fields) > ColSeqID {
		return r.Fields[ColSeqID]
	}
	return ""
}

func (r Record) Source() string {
	if len(r.Fields) > ColSource {
		return r.Fields[ColSource]
	}
	return ""
}

func (r Record) FeatureType() string {
	if len(r.Fields) > ColFeatureType {
		return r.Fields[ColFeatureType]
	}
	return ""
}

// Attributes returns the raw attribute column, or "" when absent.
func (r Record) Attributes() string {
	if r.HasAttributes() {
		return r.Fields[ColAttributes]
	}
	return ""
}

// core/attr/codec.go
package attr

import (
	"errors"
	"fmt"
	"strings"

	"gffkit-core/dialect"
)

// ErrUnknownDialect rejects codec calls against an unresolved dialect, whose
// separator/assigner fields hold diagnostic text rather than parsing tokens.
var ErrUnknownDialect = errors.New("attr: dialect unresolved; detect it or set separator and assigner explicitly")

// Keys that legitimately hold comma-separated lists in GFF3 output and are
// therefore never quoted.
var quoteExempt = map[string]struct{}{
	"dbxref":        {},
	"ontology_term": {},
	"is_a":          {},
	"derives_from":  {},
	"belongs_to":    {},
}

// Parse decodes an attribute column under the given dialect. Tokens without
// the assigner become flag keys with an empty value. When the dialect
// records quoting (GTF-like input), one layer of surrounding quotes is
// stripped from values so downstream serialization does not double-wrap.
func Parse(column string, d dialect.Dialect) (*Map, error) {
	if d.Format == dialect.Unknown {
		return nil, ErrUnknownDialect
	}
	m := NewMap()
	for _, tok := range strings.Split(column, d.Separator) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key, val := tok, ""
		if i := strings.Index(tok, d.Assigner); i >= 0 {
			key = strings.TrimSpace(tok[:i])
			val = strings.TrimSpace(tok[i+len(d.Assigner):])
		}
		if key == "" {
			continue
		}
		if d.Quoting {
			val = unwrap(val)
		}
		m.Set(key, val)
	}
	return m, nil
}

// Serialize encodes the mapping in the target syntax.
//
// GTF: `key "value"; ` entries with every value quoted and the trailing ';'
// retained. GFF3: `key=value` joined by ';', quoting a value only when it
// contains separator-significant characters, is not already wrapped, and its
// key is not list-exempt.
func Serialize(m *Map, target dialect.Format) (string, error) {
	switch target {
	case dialect.GTFLike:
		parts := make([]string, 0, m.Len())
		m.Each(func(k, v string) {
			if !wrapped(v) {
				v = `"` + v + `"`
			}
			parts = append(parts, k+" "+v)
		})
		if len(parts) == 0 {
			return "", nil
		}
		return strings.Join(parts, "; ") + ";", nil
	case dialect.GFF3Like:
		parts := make([]string, 0, m.Len())
		m.Each(func(k, v string) {
			if needsQuote(k, v) {
				v = `"` + v + `"`
			}
			if v == "" {
				parts = append(parts, k)
				return
			}
			parts = append(parts, k+"="+v)
		})
		return strings.Join(parts, ";"), nil
	default:
		return "", fmt.Errorf("attr: cannot serialize to %s", target)
	}
}

func needsQuote(key, val string) bool {
	if val == "" || wrapped(val) {
		return false
	}
	if _, exempt := quoteExempt[strings.ToLower(key)]; exempt {
		return false
	}
	return strings.ContainsAny(val, " ;=,")
}

func wrapped(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

func unwrap(s string) string {
	if wrapped(s) {
		return s[1 : len(s)-1]
	}
	return s
}

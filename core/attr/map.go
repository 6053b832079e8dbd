// core/attr/map.go
package attr

import "strings"

type pair struct {
	key   string // original casing
	value string
}

// Map is an ordered key→value attribute mapping. Lookups are
// case-insensitive; the casing of the first Set wins for output. An empty
// value marks a flag-like token that carried no assigner.
type Map struct {
	pairs []pair
	index map[string]int // lower(key) → pairs position
}

func NewMap() *Map {
	return &Map{index: map[string]int{}}
}

func (m *Map) Len() int { return len(m.pairs) }

// Set inserts or updates key. An existing entry keeps its position and its
// original casing.
func (m *Map) Set(key, value string) {
	lk := strings.ToLower(key)
	if i, ok := m.index[lk]; ok {
		m.pairs[i].value = value
		return
	}
	m.index[lk] = len(m.pairs)
	m.pairs = append(m.pairs, pair{key: key, value: value})
}

func (m *Map) Get(key string) (string, bool) {
	i, ok := m.index[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return m.pairs[i].value, true
}

func (m *Map) Has(key string) bool {
	_, ok := m.index[strings.ToLower(key)]
	return ok
}

// Keys returns the keys in insertion order with original casing.
func (m *Map) Keys() []string {
	out := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = p.key
	}
	return out
}

// Each visits entries in insertion order.
func (m *Map) Each(fn func(key, value string)) {
	for _, p := range m.pairs {
		fn(p.key, p.value)
	}
}

// Equal reports order-, casing- and value-exact equality.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i := range m.pairs {
		if m.pairs[i] != o.pairs[i] {
			return false
		}
	}
	return true
}

package reconcile

import (
	"sort"
	"strconv"
	"strings"
)

// KeyTuple holds the primary key cells of one row, in the order the key
// columns were requested. Two tuples are equal iff every cell is equal.
type KeyTuple []string

// String renders the tuple as a quoted list, e.g. ["2", "a"].
func (k KeyTuple) String() string {
	parts := make([]string, len(k))
	for i, cell := range k {
		parts[i] = strconv.Quote(cell)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// encode returns an unambiguous map key: each cell is length-prefixed, so
// ("a,b") and ("a", "b") never collide.
func (k KeyTuple) encode() string {
	var b strings.Builder
	for _, cell := range k {
		b.WriteString(strconv.Itoa(len(cell)))
		b.WriteByte(':')
		b.WriteString(cell)
	}
	return b.String()
}

// ValueTuple maps every non-key column name to its cell.
// Comparison is by name, never by position.
type ValueTuple map[string]string

// Equal reports whether both tuples hold the same names with the same cells.
func (v ValueTuple) Equal(other ValueTuple) bool {
	if len(v) != len(other) {
		return false
	}
	for name, cell := range v {
		if oc, ok := other[name]; !ok || oc != cell {
			return false
		}
	}
	return true
}

// DiffColumns returns the sorted names whose cells differ, including names
// present on one side only.
func (v ValueTuple) DiffColumns(other ValueTuple) []string {
	var cols []string
	for name, cell := range v {
		if oc, ok := other[name]; !ok || oc != cell {
			cols = append(cols, name)
		}
	}
	for name := range other {
		if _, ok := v[name]; !ok {
			cols = append(cols, name)
		}
	}
	sort.Strings(cols)
	return cols
}

type keyedEntry struct {
	key    KeyTuple
	values ValueTuple
}

// KeyedMap indexes rows by KeyTuple. Iteration follows the order in which
// each distinct key was first inserted.
type KeyedMap struct {
	order   []string
	entries map[string]*keyedEntry

	// Rows counts every Put, overwrites included.
	Rows int
	// Duplicates counts Puts that replaced an existing key.
	Duplicates int
}

// NewKeyedMap creates an empty KeyedMap.
func NewKeyedMap() *KeyedMap {
	return &KeyedMap{entries: make(map[string]*keyedEntry)}
}

// Put stores values under key. An existing entry is overwritten in place
// (last write wins, first position kept) and replaced is true.
func (m *KeyedMap) Put(key KeyTuple, values ValueTuple) (replaced bool) {
	m.Rows++
	enc := key.encode()
	if e, ok := m.entries[enc]; ok {
		e.values = values
		m.Duplicates++
		return true
	}
	m.entries[enc] = &keyedEntry{key: key, values: values}
	m.order = append(m.order, enc)
	return false
}

// Get returns the values stored under key.
func (m *KeyedMap) Get(key KeyTuple) (ValueTuple, bool) {
	e, ok := m.entries[key.encode()]
	if !ok {
		return nil, false
	}
	return e.values, true
}

// Has reports whether key is present.
func (m *KeyedMap) Has(key KeyTuple) bool {
	_, ok := m.entries[key.encode()]
	return ok
}

// Len returns the number of distinct keys.
func (m *KeyedMap) Len() int {
	return len(m.order)
}

// keys returns the distinct keys in insertion order.
func (m *KeyedMap) keys() []KeyTuple {
	out := make([]KeyTuple, len(m.order))
	for i, enc := range m.order {
		out[i] = m.entries[enc].key
	}
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *KeyedMap) Range(fn func(key KeyTuple, values ValueTuple) bool) {
	for _, enc := range m.order {
		e := m.entries[enc]
		if !fn(e.key, e.values) {
			return
		}
	}
}

// Mismatch is a key present in both datasets with different values.
type Mismatch struct {
	// Key is the shared primary key.
	Key KeyTuple `json:"key"`

	// Left holds the value columns of dataset 1.
	Left ValueTuple `json:"left"`

	// Right holds the value columns of dataset 2.
	Right ValueTuple `json:"right"`

	// Columns lists the differing column names, sorted.
	Columns []string `json:"columns"`
}

// DiffResult contains the three discrepancy categories of a comparison.
type DiffResult struct {
	// OnlyLeft contains keys present in dataset 1 only, in dataset 1 order.
	OnlyLeft []KeyTuple `json:"only_left"`

	// OnlyRight contains keys present in dataset 2 only, in dataset 2 order.
	OnlyRight []KeyTuple `json:"only_right"`

	// Mismatches contains shared keys with differing values, in dataset 1 order.
	Mismatches []Mismatch `json:"mismatches"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Equal reports whether the comparison found no discrepancy at all.
func (r *DiffResult) Equal() bool {
	return len(r.OnlyLeft) == 0 && len(r.OnlyRight) == 0 && len(r.Mismatches) == 0
}

// Summary provides aggregate statistics for a comparison.
type Summary struct {
	// LeftRows and RightRows count the indexed rows of each dataset.
	LeftRows  int `json:"left_rows"`
	RightRows int `json:"right_rows"`

	// LeftKeys and RightKeys count distinct keys of each dataset.
	LeftKeys  int `json:"left_keys"`
	RightKeys int `json:"right_keys"`

	// LeftDuplicates and RightDuplicates count rows overwritten by a later duplicate key.
	LeftDuplicates  int `json:"left_duplicates"`
	RightDuplicates int `json:"right_duplicates"`

	// OnlyLeft counts keys present in dataset 1 only.
	OnlyLeft int `json:"only_left"`

	// OnlyRight counts keys present in dataset 2 only.
	OnlyRight int `json:"only_right"`

	// Mismatches counts shared keys with differing values.
	Mismatches int `json:"mismatches"`

	// Matched counts shared keys with equal values.
	Matched int `json:"matched"`
}

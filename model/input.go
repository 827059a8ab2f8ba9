package model

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ElementKey is the reserved key some upstream adapters use to smuggle a
// source node into keyed row data. It never becomes a column.
const ElementKey = "_element"

// CellInput is the raw input for a single cell: a scalar content value,
// optionally spanning multiple columns/rows and carrying its own style layer.
type CellInput struct {
	Content any
	ColSpan int
	RowSpan int
	Styles  StyleDef
}

// Value wraps a scalar as a CellInput
func Value(v any) CellInput {
	return CellInput{Content: v}
}

// AsCellInput converts an arbitrary input value to a CellInput.
// CellInput values pass through unchanged; anything else becomes content.
func AsCellInput(v any) CellInput {
	switch c := v.(type) {
	case CellInput:
		return c
	case *CellInput:
		if c != nil {
			return *c
		}
		return CellInput{}
	default:
		return CellInput{Content: v}
	}
}

// KV is one key/value pair of a keyed row
type KV struct {
	Key   string
	Value any
}

// RowInput is one row of raw table input, either positional (an ordered
// sequence of cell values) or keyed (a mapping from column key to cell
// value). The variant is fixed at construction time.
type RowInput struct {
	keyed   bool
	cells   []CellInput
	keys    []string
	index   map[string]int
	element any
}

// Cells creates a positional row from an ordered sequence of cell values.
// Each value may be a scalar or a CellInput.
func Cells(values ...any) RowInput {
	cells := make([]CellInput, len(values))
	for i, v := range values {
		cells[i] = AsCellInput(v)
	}
	return RowInput{cells: cells}
}

// Keyed creates a keyed row from ordered key/value pairs. Pair order is
// preserved and determines column inference order.
func Keyed(pairs ...KV) RowInput {
	r := RowInput{
		keyed: true,
		cells: make([]CellInput, 0, len(pairs)),
		keys:  make([]string, 0, len(pairs)),
		index: make(map[string]int, len(pairs)),
	}
	for _, p := range pairs {
		if _, exists := r.index[p.Key]; exists {
			r.cells[r.index[p.Key]] = AsCellInput(p.Value)
			continue
		}
		r.index[p.Key] = len(r.cells)
		r.keys = append(r.keys, p.Key)
		r.cells = append(r.cells, AsCellInput(p.Value))
	}
	return r
}

// KeyedMap creates a keyed row from a map. Keys are sorted so that column
// inference from map input is deterministic.
func KeyedMap(m map[string]any) RowInput {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]KV, len(keys))
	for i, k := range keys {
		pairs[i] = KV{Key: k, Value: m[k]}
	}
	return Keyed(pairs...)
}

// WithElement returns a copy of the row carrying the source node it was
// parsed from (an HTML element, a DOCX row, ...)
func (r RowInput) WithElement(el any) RowInput {
	r.element = el
	return r
}

// Element returns the source node the row was parsed from, if any
func (r RowInput) Element() any {
	return r.element
}

// IsKeyed reports whether the row maps keys to cells rather than positions
func (r RowInput) IsKeyed() bool {
	return r.keyed
}

// Len returns the number of cell values in the row
func (r RowInput) Len() int {
	return len(r.cells)
}

// At returns the cell value at position i of a positional row
func (r RowInput) At(i int) (CellInput, bool) {
	if i < 0 || i >= len(r.cells) {
		return CellInput{}, false
	}
	return r.cells[i], true
}

// Get returns the cell value stored under key in a keyed row
func (r RowInput) Get(key string) (CellInput, bool) {
	if r.index == nil {
		return CellInput{}, false
	}
	i, ok := r.index[key]
	if !ok {
		return CellInput{}, false
	}
	return r.cells[i], true
}

// Keys returns the keys of a keyed row in insertion order
func (r RowInput) Keys() []string {
	return r.keys
}

// NormalizeLines converts a raw content value to a sequence of text lines.
// Strings split on newlines, string slices pass through line by line, nil
// becomes a single empty line, and anything else is formatted with fmt.
// All lines are normalized to NFC so width measurement is consistent.
func NormalizeLines(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{""}
	case string:
		return splitLines(t)
	case []string:
		lines := make([]string, len(t))
		for i, s := range t {
			lines[i] = norm.NFC.String(s)
		}
		return lines
	default:
		return splitLines(fmt.Sprint(v))
	}
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = norm.NFC.String(l)
	}
	return lines
}

package model

// Section identifies one of the three row groups of a table
type Section int

const (
	Head Section = iota
	Body
	Foot
)

func (s Section) String() string {
	switch s {
	case Head:
		return "head"
	case Foot:
		return "foot"
	default:
		return "body"
	}
}

// ColumnDef is an explicit column descriptor supplied by the caller.
// DataKey identifies the column; Key is a legacy alias consulted when
// DataKey is empty. Header and Footer carry the raw cell values used to
// synthesize head/foot rows, and may be scalars or CellInput values.
type ColumnDef struct {
	DataKey string
	Key     string
	Header  any
	Footer  any
}

// Column represents one resolved table column. Index is fixed at resolution
// time and is the column's position in Table.Columns; DataKey is its stable
// identity for keyed row lookup and column style lookup.
type Column struct {
	DataKey string
	Index   int

	// Raw head/foot cell values from the column descriptor, if any
	Header *CellInput
	Footer *CellInput

	// Aggregated width demands over the column's cells
	MinWidth         float64
	WrappedWidth     float64
	MinReadableWidth float64
}

// Cell represents one resolved table cell
type Cell struct {
	// Raw is the input value the cell was built from
	Raw any

	// Text is the cell content normalized to a sequence of lines
	Text []string

	// Styles is the effective style after the cascade
	Styles Style

	ColSpan int
	RowSpan int

	ContentWidth     float64
	MinWidth         float64
	WrappedWidth     float64
	MinReadableWidth float64
}

// NewCell builds a cell from raw input and its resolved style. Spans of
// zero or less are clamped to 1 so span bookkeeping stays sound.
func NewCell(input CellInput, st Style) *Cell {
	colSpan := input.ColSpan
	if colSpan < 1 {
		colSpan = 1
	}
	rowSpan := input.RowSpan
	if rowSpan < 1 {
		rowSpan = 1
	}
	return &Cell{
		Raw:     input.Content,
		Text:    NormalizeLines(input.Content),
		Styles:  st,
		ColSpan: colSpan,
		RowSpan: rowSpan,
	}
}

// Row represents one resolved table row. Cells is keyed by column index;
// columns claimed by a span from an earlier cell have no entry.
type Row struct {
	Index   int
	Section Section
	Cells   map[int]*Cell

	keyed map[string]*Cell
}

// NewRow creates an empty row in the given section
func NewRow(section Section, index int) *Row {
	return &Row{
		Index:   index,
		Section: section,
		Cells:   make(map[int]*Cell),
		keyed:   make(map[string]*Cell),
	}
}

// SetCell records a cell under the column's index and data key
func (r *Row) SetCell(col *Column, cell *Cell) {
	r.Cells[col.Index] = cell
	r.keyed[col.DataKey] = cell
}

// CellAt returns the cell anchored at the given column index, or nil
func (r *Row) CellAt(index int) *Cell {
	return r.Cells[index]
}

// CellByKey returns the cell anchored at the column with the given data
// key, or nil
func (r *Row) CellByKey(key string) *Cell {
	return r.keyed[key]
}

// Table is the fully resolved grid model handed to a paginator/renderer
type Table struct {
	Columns []*Column
	Head    []*Row
	Body    []*Row
	Foot    []*Row
}

// SectionRows returns the rows of the given section
func (t *Table) SectionRows(s Section) []*Row {
	switch s {
	case Head:
		return t.Head
	case Foot:
		return t.Foot
	default:
		return t.Body
	}
}

// AllRows returns every row in render order: head, body, foot
func (t *Table) AllRows() []*Row {
	rows := make([]*Row, 0, len(t.Head)+len(t.Body)+len(t.Foot))
	rows = append(rows, t.Head...)
	rows = append(rows, t.Body...)
	rows = append(rows, t.Foot...)
	return rows
}

// ColumnByKey returns the column with the given data key, or nil
func (t *Table) ColumnByKey(key string) *Column {
	for _, c := range t.Columns {
		if c.DataKey == key {
			return c
		}
	}
	return nil
}

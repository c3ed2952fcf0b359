package player

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Canonical column labels after header normalization.
const (
	FieldName      = "Name"
	FieldLeague    = "League"
	FieldPosition  = "Position"
	FieldTeam      = "Team"
	FieldNation    = "Nation"
	FieldOverall   = "Ovr"
	FieldAge       = "Age"
	FieldPace      = "Pac"
	FieldPassing   = "Pas"
	FieldDribbling = "Dri"
	FieldDefense   = "Def"
	FieldPhysical  = "Phy"
)

// DefaultIdentifierColumns is the number of leading source columns that carry
// row identifiers (index, rank) instead of player attributes.
const DefaultIdentifierColumns = 2

// FilterableFields lists the categorical columns a Criteria can restrict, in
// the order they are applied.
var FilterableFields = []string{FieldLeague, FieldPosition, FieldTeam}

// Record is one player row keyed by canonical column label.
type Record struct {
	cells map[string]string
}

func NewRecord(cells map[string]string) Record {
	copied := make(map[string]string, len(cells))
	for k, v := range cells {
		copied[k] = v
	}
	return Record{cells: copied}
}

func (r Record) Value(field string) (string, bool) {
	v, ok := r.cells[field]
	return v, ok
}

// Number parses a numeric cell. Absent columns and blank or non-numeric cells
// report false.
func (r Record) Number(field string) (float64, bool) {
	raw, ok := r.cells[field]
	if !ok {
		return 0, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (r Record) Name() string {
	v, _ := r.Value(FieldName)
	return v
}

func (r Record) Team() string {
	v, _ := r.Value(FieldTeam)
	return v
}

func (r Record) Nation() string {
	v, _ := r.Value(FieldNation)
	return v
}

func (r Record) Overall() (float64, bool) {
	return r.Number(FieldOverall)
}

func (r Record) Age() (float64, bool) {
	return r.Number(FieldAge)
}

func (r Record) project(columns []string) Record {
	cells := make(map[string]string, len(columns))
	for _, c := range columns {
		if v, ok := r.cells[c]; ok {
			cells[c] = v
		}
	}
	return Record{cells: cells}
}

// Table is the player table as loaded from a Source. It is never mutated after
// construction; narrowing always goes through a View.
type Table struct {
	columns []string
	records []Record
}

// NewTable normalizes header labels and builds records from raw rows. Every
// row must have exactly one cell per header label.
func NewTable(header []string, rows [][]string) (Table, error) {
	if len(header) == 0 {
		return Table{}, fmt.Errorf("table header is empty")
	}

	columns := NormalizeColumns(header)
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return Table{}, fmt.Errorf("duplicate column %q after normalization", c)
		}
		seen[c] = struct{}{}
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return Table{}, fmt.Errorf("row %d has %d cells, expected %d", i+1, len(row), len(columns))
		}
		cells := make(map[string]string, len(columns))
		for j, c := range columns {
			cells[c] = row[j]
		}
		records = append(records, Record{cells: cells})
	}

	return Table{columns: columns, records: records}, nil
}

func (t Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t Table) Len() int {
	return len(t.records)
}

func (t Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// BaseView drops the leading identifierColumns columns and exposes the rest as
// an unfiltered view.
func (t Table) BaseView(identifierColumns int) View {
	if identifierColumns < 0 {
		identifierColumns = 0
	}
	if identifierColumns > len(t.columns) {
		identifierColumns = len(t.columns)
	}

	columns := append([]string(nil), t.columns[identifierColumns:]...)
	records := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		records = append(records, r.project(columns))
	}

	return View{columns: columns, records: records}
}

// View is an ordered subset of a table's rows over a subset of its columns.
type View struct {
	columns []string
	records []Record
}

func NewView(columns []string, records []Record) View {
	return View{
		columns: append([]string(nil), columns...),
		records: append([]Record(nil), records...),
	}
}

func (v View) Columns() []string {
	return append([]string(nil), v.columns...)
}

func (v View) HasColumn(field string) bool {
	for _, c := range v.columns {
		if c == field {
			return true
		}
	}
	return false
}

func (v View) Len() int {
	return len(v.records)
}

func (v View) Record(i int) Record {
	return v.records[i]
}

func (v View) Records() []Record {
	return append([]Record(nil), v.records...)
}

// Where keeps the records accepted by keep, preserving their order.
func (v View) Where(keep func(Record) bool) View {
	out := make([]Record, 0, len(v.records))
	for _, r := range v.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return View{columns: v.columns, records: out}
}

// Rows renders the view as cell text in column order.
func (v View) Rows() [][]string {
	out := make([][]string, 0, len(v.records))
	for _, r := range v.records {
		row := make([]string, len(v.columns))
		for i, c := range v.columns {
			row[i] = r.cells[c]
		}
		out = append(out, row)
	}
	return out
}

// Criteria holds the selected values per filterable column. An empty slice
// leaves that column unrestricted.
type Criteria struct {
	Leagues   []string
	Positions []string
	Teams     []string
}

// Selection is the accepted value set for one column.
type Selection struct {
	Field  string
	Values []string
}

func (c Criteria) Selections() []Selection {
	return []Selection{
		{Field: FieldLeague, Values: c.Leagues},
		{Field: FieldPosition, Values: c.Positions},
		{Field: FieldTeam, Values: c.Teams},
	}
}

func (c Criteria) IsEmpty() bool {
	return len(c.Leagues) == 0 && len(c.Positions) == 0 && len(c.Teams) == 0
}

// Package scale computes the (min, max) ranges that drive cell shading.
//
// A Mode selects the scope of a range: the whole table, each data row, or
// each column. Only colorable cells (numeric, outside the row-header
// column) contribute. A scope without any colorable cell has no range and
// its cells stay unshaded.
package scale

import (
	"strings"

	"github.com/tsawler/colortable/model"
)

// Mode selects the scope over which a Range is computed.
type Mode int

const (
	// Table computes one range over every colorable cell.
	Table Mode = iota
	// Rows computes one range per data row.
	Rows
	// Columns computes one range per column.
	Columns
)

// String returns the selector name of the mode.
func (m Mode) String() string {
	switch m {
	case Table:
		return "table"
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return "unknown"
	}
}

// ParseMode resolves a mode name. Unknown names report false and Table.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table", "all":
		return Table, true
	case "rows", "row":
		return Rows, true
	case "columns", "column", "cols", "col":
		return Columns, true
	default:
		return Table, false
	}
}

// Range is the (min, max) of one scope.
type Range struct {
	Min, Max float64
}

// Normalize returns v's position within r, clamped to [0, 1]. A degenerate
// range (Max <= Min) places every value at 1.
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return 1
	}
	t := (v - r.Min) / (r.Max - r.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Override holds optional global bounds. They apply in Table mode only;
// each non-nil bound replaces the computed one.
type Override struct {
	Min *float64
	Max *float64
}

// IsSet reports whether either bound is present.
func (o Override) IsSet() bool {
	return o.Min != nil || o.Max != nil
}

// Ranges holds the computed ranges for one table and mode.
type Ranges struct {
	Mode Mode

	// OverrideIgnored is set when an override was supplied but not used,
	// either because Mode is not Table or because its min exceeded its max.
	OverrideIgnored bool

	scopes []scope
}

// scope is one Range plus whether any cell contributed to it.
type scope struct {
	r     Range
	valid bool
}

// Compute builds the ranges of t for mode m. A nil or empty table, or a
// per-column request on a table without columns, yields Ranges whose For
// always reports false.
func Compute(t *model.Table, m Mode, o Override) Ranges {
	rs := Ranges{Mode: m}
	if t == nil {
		rs.OverrideIgnored = o.IsSet()
		return rs
	}

	switch m {
	case Rows:
		rs.scopes = make([]scope, t.RowCount())
		for i := range t.Rows {
			for j := range t.Rows[i] {
				rs.scopes[i].add(&t.Rows[i][j])
			}
		}
	case Columns:
		rs.scopes = make([]scope, t.ColCount())
		for j := range rs.scopes {
			for _, c := range t.Column(j) {
				rs.scopes[j].add(c)
			}
		}
	default:
		rs.scopes = make([]scope, 1)
		for i := range t.Rows {
			for j := range t.Rows[i] {
				rs.scopes[0].add(&t.Rows[i][j])
			}
		}
	}

	if o.IsSet() {
		if m == Table {
			rs.OverrideIgnored = !rs.scopes[0].override(o)
		} else {
			rs.OverrideIgnored = true
		}
	}
	return rs
}

// For returns the range of the scope owning the data cell at (row, col).
// It reports false when that scope has no colorable cell or the position
// is outside the table.
func (rs Ranges) For(row, col int) (Range, bool) {
	idx := 0
	switch rs.Mode {
	case Rows:
		idx = row
	case Columns:
		idx = col
	}
	if row < 0 || col < 0 || idx >= len(rs.scopes) {
		return Range{}, false
	}
	s := rs.scopes[idx]
	return s.r, s.valid
}

// Len returns the number of scopes, valid or not.
func (rs Ranges) Len() int {
	return len(rs.scopes)
}

// Position returns the normalized position of c within its scope, and
// false when c is not colorable or its scope has no range.
func (rs Ranges) Position(c *model.Cell) (float64, bool) {
	v, ok := c.Number()
	if !ok || !c.Colorable() {
		return 0, false
	}
	r, ok := rs.For(c.Row, c.Col)
	if !ok {
		return 0, false
	}
	return r.Normalize(v), true
}

func (s *scope) add(c *model.Cell) {
	if !c.Colorable() {
		return
	}
	v, _ := c.Number()
	if !s.valid {
		s.r = Range{Min: v, Max: v}
		s.valid = true
		return
	}
	if v < s.r.Min {
		s.r.Min = v
	}
	if v > s.r.Max {
		s.r.Max = v
	}
}

// override applies o to s and reports whether it was accepted. A scope
// without colorable cells keeps no range; the bounds are still validated.
func (s *scope) override(o Override) bool {
	r := s.r
	if o.Min != nil {
		r.Min = *o.Min
	}
	if o.Max != nil {
		r.Max = *o.Max
	}
	if s.valid && r.Min > r.Max {
		return false
	}
	if !s.valid && o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		return false
	}
	if s.valid {
		s.r = r
	}
	return true
}

package model

import (
	"strings"
)

// Table represents a parsed table: one header row of labels followed by
// data rows. Every data row holds exactly len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// NewTable creates a table with the given headers and rows empty cells per
// column.
func NewTable(headers []string, rows int) *Table {
	table := &Table{
		Headers: append([]string(nil), headers...),
		Rows:    make([][]Cell, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, len(headers))
		for j := range headers {
			table.Rows[i][j] = NewCell("", i, j)
		}
	}
	return table
}

// AddRow appends a data row built from fields. Missing fields become empty
// cells and surplus fields are dropped, so the row always matches the
// header count.
func (t *Table) AddRow(fields []string) {
	row := len(t.Rows)
	cells := make([]Cell, len(t.Headers))
	for j := range cells {
		raw := ""
		if j < len(fields) {
			raw = fields[j]
		}
		cells[j] = NewCell(raw, row, j)
	}
	t.Rows = append(t.Rows, cells)
}

// IsEmpty reports whether the table has no header.
func (t *Table) IsEmpty() bool {
	return len(t.Headers) == 0
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	return len(t.Headers)
}

// GetCell returns the cell at the given data row and column (0-indexed)
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// Column returns pointers to every data cell in column col, top to bottom.
func (t *Table) Column(col int) []*Cell {
	if col < 0 || col >= len(t.Headers) {
		return nil
	}
	cells := make([]*Cell, 0, len(t.Rows))
	for i := range t.Rows {
		cells = append(cells, &t.Rows[i][col])
	}
	return cells
}

// NumericValues returns the magnitudes of all colorable cells in row-major
// order.
func (t *Table) NumericValues() []float64 {
	var values []float64
	for i := range t.Rows {
		for j := range t.Rows[i] {
			c := &t.Rows[i][j]
			if c.Colorable() {
				values = append(values, c.number)
			}
		}
	}
	return values
}

// GetText returns the table as tab-separated text, header first.
func (t *Table) GetText() string {
	var sb strings.Builder
	writeLine := func(fields []string) {
		sb.WriteString(strings.Join(fields, "\t"))
		sb.WriteString("\n")
	}
	if len(t.Headers) > 0 {
		writeLine(t.Headers)
	}
	for _, row := range t.Rows {
		writeLine(displays(row))
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Headers) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(fields []string) {
		for j, f := range fields {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(f, "|", `\|`))
			sb.WriteString(" ")
			if j == len(fields)-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers)

	// Separator; numeric columns are right-aligned
	for j := range t.Headers {
		if t.numericColumn(j) {
			sb.WriteString("|---:")
		} else {
			sb.WriteString("|---")
		}
		if j == len(t.Headers)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(displays(row))
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	writeRow := func(fields []string) {
		for j, text := range fields {
			// Escape quotes and wrap in quotes if necessary
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(fields)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	if len(t.Headers) > 0 {
		writeRow(t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(displays(row))
	}
	return sb.String()
}

// numericColumn reports whether every non-empty data cell in col is numeric
// and at least one is present.
func (t *Table) numericColumn(col int) bool {
	seen := false
	for _, c := range t.Column(col) {
		if c.IsEmpty() {
			continue
		}
		if !c.Colorable() {
			return false
		}
		seen = true
	}
	return seen
}

func displays(row []Cell) []string {
	out := make([]string, len(row))
	for i := range row {
		out[i] = row[i].Display
	}
	return out
}

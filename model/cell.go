package model

import (
	"strings"

	"github.com/tsawler/colortable/value"
)

// Cell represents a data cell of a table.
type Cell struct {
	Raw     string // trimmed source text
	Display string // text shown when rendered; equals Raw, "%" included
	Row     int    // data row index (0-based, header excluded)
	Col     int    // column index (0 is the row-header column)

	// IsHeader marks the first cell of a data row, rendered as a row header.
	IsHeader bool

	Style CellStyle

	number  float64
	numeric bool
	percent bool
}

// NewCell creates a cell from field text at the given position and
// classifies it. The numeric magnitude is derived here and only here.
func NewCell(raw string, row, col int) Cell {
	text := strings.TrimSpace(raw)
	c := Cell{
		Raw:      text,
		Display:  text,
		Row:      row,
		Col:      col,
		IsHeader: col == 0,
	}
	if v, ok := value.Classify(text); ok {
		c.number = v.Number
		c.numeric = true
		c.percent = v.Percent
	}
	return c
}

// Number returns the numeric magnitude and whether the cell is numeric.
func (c *Cell) Number() (float64, bool) {
	return c.number, c.numeric
}

// IsNumeric reports whether the cell text is a number.
func (c *Cell) IsNumeric() bool { return c.numeric }

// IsPercent reports whether the cell text carried a trailing "%".
func (c *Cell) IsPercent() bool { return c.percent }

// IsEmpty reports whether the cell has no text.
func (c *Cell) IsEmpty() bool { return c.Raw == "" }

// Colorable reports whether the cell takes part in range computation and
// shading: numeric data cells outside the row-header column.
func (c *Cell) Colorable() bool {
	return c.numeric && !c.IsHeader
}

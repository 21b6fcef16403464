package model

import "fmt"

// TextAlignment represents horizontal text alignment
type TextAlignment int

const (
	AlignDefault TextAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// CSS returns the text-align keyword, or "" for AlignDefault.
func (a TextAlignment) CSS() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// String returns the string representation of the alignment.
func (a TextAlignment) String() string {
	if a == AlignDefault {
		return "default"
	}
	return a.CSS()
}

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// CellStyle represents the presentation applied to a data cell
type CellStyle struct {
	BackgroundColor *Color // nil: no background
	Alignment       TextAlignment
}

// IsZero reports whether the style carries no presentation at all.
func (s CellStyle) IsZero() bool {
	return s.BackgroundColor == nil && s.Alignment == AlignDefault
}

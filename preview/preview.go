// Package preview draws a styled model.Table for a terminal with lipgloss.
//
// It shows the same shading the HTML fragment carries: numeric data cells
// are right-aligned on their computed background color, headers are bold.
package preview

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/colortable/model"
)

// Previewer renders tables for one output.
type Previewer struct {
	r *lipgloss.Renderer
}

// New returns a Previewer that detects the color support of w.
func New(w io.Writer) *Previewer {
	return &Previewer{r: lipgloss.NewRenderer(w)}
}

// WithRenderer returns a Previewer using r, for callers that need to pin
// the color profile.
func WithRenderer(r *lipgloss.Renderer) *Previewer {
	return &Previewer{r: r}
}

// Render draws t as space-separated, width-aligned columns. An empty table
// renders as "".
func (p *Previewer) Render(t *model.Table) string {
	if t == nil || t.IsEmpty() {
		return ""
	}

	widths := columnWidths(t)
	header := p.r.NewStyle().Bold(true).Underline(true)
	rowHeader := p.r.NewStyle().Bold(true)
	plain := p.r.NewStyle()

	lines := make([]string, 0, t.RowCount()+1)

	cells := make([]string, len(t.Headers))
	for j, h := range t.Headers {
		cells[j] = header.Width(widths[j]).Render(h)
	}
	lines = append(lines, strings.Join(cells, " "))

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for j := range row {
			c := &row[j]
			style := plain
			switch {
			case c.IsHeader:
				style = rowHeader
			case !c.Style.IsZero():
				style = p.cellStyle(c.Style)
			}
			cells[j] = style.Width(widths[j]).Render(c.Display)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func (p *Previewer) cellStyle(s model.CellStyle) lipgloss.Style {
	style := p.r.NewStyle()
	switch s.Alignment {
	case model.AlignRight:
		style = style.Align(lipgloss.Right)
	case model.AlignCenter:
		style = style.Align(lipgloss.Center)
	}
	if bg := s.BackgroundColor; bg != nil {
		style = style.
			Background(lipgloss.Color(bg.Hex())).
			Foreground(lipgloss.Color(contrast(*bg).Hex()))
	}
	return style
}

// contrast picks black or white text for readability on bg.
func contrast(bg model.Color) model.Color {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 140 {
		return model.Color{}
	}
	return model.Color{R: 255, G: 255, B: 255}
}

func columnWidths(t *model.Table) []int {
	widths := make([]int, len(t.Headers))
	for j, h := range t.Headers {
		widths[j] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for j := range row {
			if w := lipgloss.Width(row[j].Display); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

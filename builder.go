package colortable

import (
	"github.com/tsawler/colortable/format"
	"github.com/tsawler/colortable/model"
	"github.com/tsawler/colortable/scale"
)

// Builder provides a fluent interface over Inputs. Each configuration
// method returns a new Builder, so a partially configured Builder can be
// shared and extended safely.
type Builder struct {
	inputs Inputs
}

// FromText starts a Builder for text with DefaultInputs.
//
// Example:
//
//	html, _ := colortable.FromText("Name|Value\nA|1\nB|2").Delimiter(format.Pipe).HTML()
func FromText(text string) *Builder {
	in := DefaultInputs()
	in.Text = text
	return &Builder{inputs: in}
}

// FromInputs starts a Builder from existing inputs.
func FromInputs(in Inputs) *Builder {
	b := &Builder{inputs: in}
	return b.clone()
}

// clone creates a copy of the Builder with its own override bounds.
func (b *Builder) clone() *Builder {
	in := b.inputs
	if in.RangeMin != nil {
		v := *in.RangeMin
		in.RangeMin = &v
	}
	if in.RangeMax != nil {
		v := *in.RangeMax
		in.RangeMax = &v
	}
	return &Builder{inputs: in}
}

// Delimiter sets the field separator.
//
// Example:
//
//	colortable.FromText(text).Delimiter(format.Pipe)
func (b *Builder) Delimiter(d format.Delimiter) *Builder {
	nb := b.clone()
	nb.inputs.Delimiter = d
	return nb
}

// Mode sets the scope over which ranges are computed.
//
// Example:
//
//	colortable.FromText(text).Mode(scale.Columns)
func (b *Builder) Mode(m scale.Mode) *Builder {
	nb := b.clone()
	nb.inputs.Mode = m
	return nb
}

// Range overrides both bounds of the table-mode range.
func (b *Builder) Range(lo, hi float64) *Builder {
	nb := b.clone()
	nb.inputs.RangeMin = &lo
	nb.inputs.RangeMax = &hi
	return nb
}

// Min overrides only the lower bound of the table-mode range.
func (b *Builder) Min(lo float64) *Builder {
	nb := b.clone()
	nb.inputs.RangeMin = &lo
	return nb
}

// Max overrides only the upper bound of the table-mode range.
func (b *Builder) Max(hi float64) *Builder {
	nb := b.clone()
	nb.inputs.RangeMax = &hi
	return nb
}

// Colors enables custom endpoint colors.
//
// Example:
//
//	colortable.FromText(text).Colors("#000000", "#ffffff")
func (b *Builder) Colors(low, high string) *Builder {
	nb := b.clone()
	nb.inputs.UseCustomColors = true
	nb.inputs.LowColor = low
	nb.inputs.HighColor = high
	return nb
}

// DefaultColors turns custom colors off again.
func (b *Builder) DefaultColors() *Builder {
	nb := b.clone()
	nb.inputs.UseCustomColors = false
	return nb
}

// Inputs returns a copy of the configured inputs.
func (b *Builder) Inputs() Inputs {
	return b.clone().inputs
}

// Render runs the pipeline with the configured inputs.
func (b *Builder) Render() Output {
	return Render(b.Inputs())
}

// HTML renders and returns the markup and warnings.
func (b *Builder) HTML() (string, []Warning) {
	out := b.Render()
	return out.HTML, out.Warnings
}

// Table renders and returns the styled table and warnings.
func (b *Builder) Table() (*model.Table, []Warning) {
	out := b.Render()
	return out.Table, out.Warnings
}

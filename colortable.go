// Package colortable turns delimiter-separated text into a color-scaled
// HTML table.
//
// Numeric cells are shaded along a two-color gradient according to where
// their value falls within a scope: the whole table, their row, or their
// column. The pipeline is a pure function of its inputs:
//
//	out := colortable.Render(colortable.Inputs{
//	    Text:      "Name,Score\nAlpha,10\nBeta,5",
//	    Delimiter: format.Comma,
//	    Mode:      scale.Table,
//	})
//	fmt.Println(out.HTML)
//
// Or with the fluent builder:
//
//	html, warnings := colortable.FromText(text).
//	    Delimiter(format.Pipe).
//	    Mode(scale.Rows).
//	    Colors("#000000", "#ffffff").
//	    HTML()
//
// Malformed data never fails a render. Ragged rows, a bad custom color or
// an override that cannot apply are fixed up locally and reported as
// warnings.
package colortable

import (
	"fmt"

	"github.com/tsawler/colortable/colors"
	"github.com/tsawler/colortable/format"
	"github.com/tsawler/colortable/htmltable"
	"github.com/tsawler/colortable/model"
	"github.com/tsawler/colortable/parse"
	"github.com/tsawler/colortable/scale"
)

// Inputs holds everything one render depends on.
type Inputs struct {
	Text      string
	Delimiter format.Delimiter
	Mode      scale.Mode

	// RangeMin and RangeMax override the computed bounds in table mode.
	// They are ignored in rows and columns modes.
	RangeMin *float64
	RangeMax *float64

	// LowColor and HighColor ("#rrggbb") apply only when UseCustomColors is
	// set; otherwise the default endpoints are used.
	UseCustomColors bool
	LowColor        string
	HighColor       string
}

// DefaultInputs returns comma-delimited, table-scoped inputs with the
// default colors.
func DefaultInputs() Inputs {
	return Inputs{
		Delimiter: format.Comma,
		Mode:      scale.Table,
		LowColor:  colors.DefaultLow.Hex(),
		HighColor: colors.DefaultHigh.Hex(),
	}
}

// Output is the result of one render.
type Output struct {
	// HTML is the serialized table fragment, ready for a clipboard.
	HTML string

	// Table is the parsed and styled table the markup was built from.
	Table *model.Table

	Ranges    scale.Ranges
	Endpoints colors.Endpoints
	Delimiter format.Delimiter // the delimiter actually used (Auto resolved)
	Warnings  []Warning
}

// Render runs the whole pipeline: parse, classify, compute ranges, resolve
// colors, style and serialize. It never fails and holds no state between
// calls; identical inputs give byte-identical HTML.
func Render(in Inputs) Output {
	delim := in.Delimiter.Resolve(in.Text)
	table, adjustments := parse.Parse(in.Text, delim)

	var warnings []Warning
	if table.IsEmpty() {
		warnings = append(warnings, Warning{
			Kind:    WarningEmptyInput,
			Message: "input contains no table lines",
		})
	}
	for _, a := range adjustments {
		warnings = append(warnings, Warning{
			Kind:    WarningRaggedRow,
			Line:    a.Line,
			Message: fmt.Sprintf("row has %d fields, header has %d; %s", a.Got, a.Want, a.Kind),
		})
	}

	override := scale.Override{Min: in.RangeMin, Max: in.RangeMax}
	ranges := scale.Compute(table, in.Mode, override)
	if ranges.OverrideIgnored {
		msg := "range override ignored: min exceeds max"
		if in.Mode != scale.Table {
			msg = fmt.Sprintf("range override ignored in %s mode", in.Mode)
		}
		warnings = append(warnings, Warning{Kind: WarningOverrideIgnored, Message: msg})
	}

	endpoints, err := colors.Resolve(in.UseCustomColors, in.LowColor, in.HighColor)
	if err != nil {
		warnings = append(warnings, Warning{
			Kind:    WarningInvalidColor,
			Message: err.Error() + "; using default colors",
		})
	}

	htmltable.Style(table, ranges, endpoints)

	return Output{
		HTML:      htmltable.String(table),
		Table:     table,
		Ranges:    ranges,
		Endpoints: endpoints,
		Delimiter: delim,
		Warnings:  warnings,
	}
}

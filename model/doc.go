// Package model provides the in-memory representation of a parsed,
// color-scaled table.
//
// A [Table] is an ordered list of header labels plus data rows of [Cell]
// values. Every data row holds exactly one cell per header; the parser pads
// short rows and truncates long ones before a Table is built.
//
// # Cells
//
// A [Cell] keeps its trimmed source text and derives its numeric magnitude
// once, in [NewCell]. The magnitude cannot be set separately from the text:
//
//	cell := model.NewCell(" 45% ", 0, 2)
//	n, ok := cell.Number() // 45, true
//	cell.Display           // "45%"
//
// # Styling
//
// Rendering stages attach a [CellStyle] to data cells. Only two properties
// exist, alignment and background color; a nil BackgroundColor means the
// cell is left unshaded.
//
// # Export
//
// Besides the HTML renderer in package htmltable, a Table can be exported
// with ToMarkdown() and ToCSV().
package model

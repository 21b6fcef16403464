// Package parse splits delimiter-separated text into a model.Table.
//
// The first non-blank line is the header; every later non-blank line is a
// data row. Fields are trimmed. Rows are padded or truncated to the header
// width and each such fix-up is reported as an Adjustment rather than an
// error: parsing never fails.
package parse

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/colortable/format"
	"github.com/tsawler/colortable/model"
)

// AdjustmentKind identifies how a ragged row was fixed.
type AdjustmentKind int

const (
	// Padded means the row had fewer fields than the header.
	Padded AdjustmentKind = iota
	// Truncated means the row had more fields than the header.
	Truncated
)

func (k AdjustmentKind) String() string {
	if k == Truncated {
		return "truncated"
	}
	return "padded"
}

// Adjustment records a data row whose field count differed from the header.
type Adjustment struct {
	Line int // 1-based line number in the input
	Row  int // 0-based data row index
	Kind AdjustmentKind
	Got  int // fields found
	Want int // header width
}

// Parse splits text on d and builds a table. Auto is resolved against the
// text first. Input without any non-blank line yields an empty table.
func Parse(text string, d format.Delimiter) (*model.Table, []Adjustment) {
	text = normalize(text)
	sep := string(d.Resolve(text).Rune())

	table := &model.Table{}
	var adjustments []Adjustment
	header := true

	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line, sep)
		if header {
			table.Headers = fields
			header = false
			continue
		}

		if want := len(table.Headers); len(fields) != want {
			kind := Padded
			if len(fields) > want {
				kind = Truncated
			}
			adjustments = append(adjustments, Adjustment{
				Line: i + 1,
				Row:  table.RowCount(),
				Kind: kind,
				Got:  len(fields),
				Want: want,
			})
		}
		table.AddRow(fields)
	}

	return table, adjustments
}

// Lines returns the non-blank lines of text after BOM and line-ending
// normalization.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(normalize(text), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitFields(line, sep string) []string {
	fields := strings.Split(line, sep)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// normalize strips a leading byte-order mark and converts CRLF and CR line
// endings to LF.
func normalize(text string) string {
	if decoded, _, err := transform.String(unicode.BOMOverride(unicode.UTF8.NewDecoder()), text); err == nil {
		text = decoded
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

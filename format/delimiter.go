// Package format provides field delimiter selection and detection for the
// colortable library.
package format

import (
	"path/filepath"
	"strings"
)

// Delimiter represents a supported field separator.
type Delimiter int

const (
	// Comma separates fields with ','. It is the default.
	Comma Delimiter = iota
	// Pipe separates fields with '|'.
	Pipe
	// Tab separates fields with '\t'.
	Tab
	// Semicolon separates fields with ';'.
	Semicolon
	// Auto picks one of the above from the input text; see Detect.
	Auto
)

// candidates is the tie-break order used by Detect.
var candidates = []Delimiter{Comma, Pipe, Tab, Semicolon}

// String returns the selector name of the delimiter.
func (d Delimiter) String() string {
	switch d {
	case Comma:
		return "comma"
	case Pipe:
		return "pipe"
	case Tab:
		return "tab"
	case Semicolon:
		return "semicolon"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Rune returns the separator character. Auto and unknown values report ','.
func (d Delimiter) Rune() rune {
	switch d {
	case Pipe:
		return '|'
	case Tab:
		return '\t'
	case Semicolon:
		return ';'
	default:
		return ','
	}
}

// Parse resolves a selector name ("comma", "pipe", ...) or the literal
// separator character. It reports false for anything else.
func Parse(name string) (Delimiter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "comma", ",", "csv":
		return Comma, true
	case "pipe", "|":
		return Pipe, true
	case "tab", `\t`, "tsv":
		return Tab, true
	case "semicolon", ";":
		return Semicolon, true
	case "auto":
		return Auto, true
	}
	if name == "\t" {
		return Tab, true
	}
	return Comma, false
}

// Detect determines the delimiter from the first non-blank line of text.
// The most frequent candidate wins; ties go to the earlier of comma, pipe,
// tab, semicolon. Text with no candidate at all is treated as comma
// separated (a single column).
func Detect(text string) Delimiter {
	line := firstLine(text)
	best, bestCount := Comma, 0
	for _, d := range candidates {
		if n := strings.Count(line, string(d.Rune())); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// DetectFromFilename determines the delimiter from a file extension.
// Returns Auto when the extension says nothing about the separator.
func DetectFromFilename(filename string) Delimiter {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return Comma
	case ".tsv", ".tab":
		return Tab
	case ".psv":
		return Pipe
	case ".ssv":
		return Semicolon
	default:
		return Auto
	}
}

// Resolve turns Auto into a concrete delimiter for text; other values are
// returned unchanged.
func (d Delimiter) Resolve(text string) Delimiter {
	if d == Auto {
		return Detect(text)
	}
	return d
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

package colortable

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal issue found during a render.
type WarningKind int

const (
	// WarningEmptyInput means the text held no non-blank line.
	WarningEmptyInput WarningKind = iota
	// WarningRaggedRow means a row was padded or truncated to the header width.
	WarningRaggedRow
	// WarningInvalidColor means a custom color failed to parse and the
	// default endpoints were used.
	WarningInvalidColor
	// WarningOverrideIgnored means a range override was supplied but not applied.
	WarningOverrideIgnored
)

func (k WarningKind) String() string {
	switch k {
	case WarningEmptyInput:
		return "empty input"
	case WarningRaggedRow:
		return "ragged row"
	case WarningInvalidColor:
		return "invalid color"
	case WarningOverrideIgnored:
		return "override ignored"
	default:
		return "unknown"
	}
}

// Warning describes a problem that was recovered from locally.
type Warning struct {
	Kind    WarningKind
	Line    int // 1-based input line, 0 when not tied to a line
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", w.Line, w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// FormatWarnings joins warnings into a single line-per-warning string.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// HasWarning reports whether any warning is of kind k.
func HasWarning(warnings []Warning, k WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == k {
			return true
		}
	}
	return false
}

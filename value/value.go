// Package value classifies table cell text as numeric or non-numeric.
//
// A cell is numeric when its trimmed text, after removing a single trailing
// percent sign, is fully consumed by a decimal number parse. The percent sign
// never changes the magnitude: "45%" classifies as 45.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Value is the numeric reading of a cell.
type Value struct {
	Number  float64
	Percent bool // text carried a trailing "%"
}

// Classify reports the numeric value of text, or false when text is not a
// plain decimal number (optionally percent-suffixed).
func Classify(text string) (Value, bool) {
	s := strings.TrimSpace(text)
	percent := false
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		percent = true
	}
	if !isDecimal(s) {
		return Value{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, false
	}
	return Value{Number: f, Percent: percent}, true
}

// IsNumeric is shorthand for the boolean result of Classify.
func IsNumeric(text string) bool {
	_, ok := Classify(text)
	return ok
}

// isDecimal rejects the forms strconv.ParseFloat accepts but a table cell
// should not: hex floats, underscores, "Inf" and "NaN". It leaves the final
// range/syntax check to ParseFloat.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits := false
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	return digits
}

// Package colors parses endpoint colors and interpolates between them.
//
// Parsing is total at the Resolve level: a malformed custom color never
// fails a render, it reverts both endpoints to DefaultEndpoints and the
// error is handed back for the caller to report.
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/tsawler/colortable/model"
)

// ErrInvalidColor is wrapped by every parse failure.
var ErrInvalidColor = errors.New("invalid color")

// Default endpoint colors.
var (
	DefaultLow  = model.Color{R: 0x00, G: 0x00, B: 0x00}
	DefaultHigh = model.Color{R: 0x63, G: 0xbe, B: 0x7b}
)

// Endpoints are the low and high anchors of the gradient.
type Endpoints struct {
	Low  model.Color
	High model.Color
}

// DefaultEndpoints returns the black to green pair used when custom colors
// are off or invalid.
func DefaultEndpoints() Endpoints {
	return Endpoints{Low: DefaultLow, High: DefaultHigh}
}

// ParseHex parses "#rrggbb" (the "#" is optional).
func ParseHex(s string) (model.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return model.Color{}, fmt.Errorf("%w: %q is not #rrggbb", ErrInvalidColor, s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return model.Color{}, fmt.Errorf("%w: %q is not #rrggbb", ErrInvalidColor, s)
		}
		ch[i] = uint8(v)
	}
	return model.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Parse parses a hex color or, failing that, an SVG/CSS color name such as
// "white" or "steelblue".
func Parse(s string) (model.Color, error) {
	if c, err := ParseHex(s); err == nil {
		return c, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return model.Color{R: rgba.R, G: rgba.G, B: rgba.B}, nil
	}
	return model.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Resolve returns the endpoints for a render. With useCustom false the
// defaults are returned. With useCustom true both strings must parse;
// otherwise the defaults are returned together with the parse error.
func Resolve(useCustom bool, low, high string) (Endpoints, error) {
	if !useCustom {
		return DefaultEndpoints(), nil
	}
	lo, err := Parse(low)
	if err != nil {
		return DefaultEndpoints(), fmt.Errorf("low color: %w", err)
	}
	hi, err := Parse(high)
	if err != nil {
		return DefaultEndpoints(), fmt.Errorf("high color: %w", err)
	}
	return Endpoints{Low: lo, High: hi}, nil
}

// Interpolate returns the color at position t between e.Low (t=0) and
// e.High (t=1). t is clamped to [0, 1]; each channel is rounded.
func Interpolate(t float64, e Endpoints) model.Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return model.Color{
		R: lerp(e.Low.R, e.High.R, t),
		G: lerp(e.Low.G, e.High.G, t),
		B: lerp(e.Low.B, e.High.B, t),
	}
}

// CSS formats c as "rgb(r, g, b)".
func CSS(c model.Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + t*(float64(b)-float64(a)))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

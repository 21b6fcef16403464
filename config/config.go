// Package config loads default render settings for the colortable command
// from a TOML or YAML file and the environment.
package config

import (
	"github.com/tsawler/colortable"
	"github.com/tsawler/colortable/colors"
	"github.com/tsawler/colortable/format"
	"github.com/tsawler/colortable/scale"
)

// Config is the on-disk configuration.
type Config struct {
	Delimiter string       `toml:"delimiter" yaml:"delimiter"` // comma, pipe, tab, semicolon, auto
	Mode      string       `toml:"mode" yaml:"mode"`           // table, rows, columns
	Range     RangeConfig  `toml:"range" yaml:"range"`
	Colors    ColorsConfig `toml:"colors" yaml:"colors"`
	Output    OutputConfig `toml:"output" yaml:"output"`
}

// RangeConfig holds the optional table-mode bounds.
type RangeConfig struct {
	Min *float64 `toml:"min" yaml:"min"`
	Max *float64 `toml:"max" yaml:"max"`
}

// ColorsConfig selects the gradient endpoints.
type ColorsConfig struct {
	Custom bool   `toml:"custom" yaml:"custom"`
	Low    string `toml:"low" yaml:"low"`
	High   string `toml:"high" yaml:"high"`
}

// OutputConfig controls what the command does with the markup.
type OutputConfig struct {
	File    string `toml:"file" yaml:"file"` // empty: stdout
	Copy    bool   `toml:"copy" yaml:"copy"`
	Preview bool   `toml:"preview" yaml:"preview"`
}

// DefaultConfig returns comma-delimited, table-scoped settings with the
// default colors.
func DefaultConfig() *Config {
	return &Config{
		Delimiter: format.Comma.String(),
		Mode:      scale.Table.String(),
		Colors: ColorsConfig{
			Low:  colors.DefaultLow.Hex(),
			High: colors.DefaultHigh.Hex(),
		},
	}
}

// Inputs builds render inputs for text. Unknown delimiter or mode names
// fall back to comma and table.
func (c *Config) Inputs(text string) colortable.Inputs {
	d, _ := format.Parse(c.Delimiter)
	m, _ := scale.ParseMode(c.Mode)
	return colortable.Inputs{
		Text:            text,
		Delimiter:       d,
		Mode:            m,
		RangeMin:        c.Range.Min,
		RangeMax:        c.Range.Max,
		UseCustomColors: c.Colors.Custom,
		LowColor:        c.Colors.Low,
		HighColor:       c.Colors.High,
	}
}

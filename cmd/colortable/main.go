// colortable renders delimiter-separated text as a color-scaled HTML table.
//
// Usage:
//
//	colortable [flags] [file]
//
// With no file, the table text is read from stdin. The HTML fragment is
// written to stdout unless -o is given.
//
// Flags:
//
//	-config string     Path to a TOML or YAML configuration file
//	-delimiter string  comma|pipe|tab|semicolon|auto
//	-mode string       table|rows|columns
//	-min float         Lower bound of the color range (table mode only)
//	-max float         Upper bound of the color range (table mode only)
//	-low string        Low endpoint color (#rrggbb); enables custom colors
//	-high string       High endpoint color (#rrggbb); enables custom colors
//	-o string          Write the HTML to this file instead of stdout
//	-copy              Copy the HTML to the clipboard (OSC 52)
//	-preview           Print a colored preview to stderr when it is a terminal
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/tsawler/colortable"
	"github.com/tsawler/colortable/config"
	"github.com/tsawler/colortable/format"
	"github.com/tsawler/colortable/preview"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// newClipboard returns the clipboard collaborator for -copy.
var newClipboard = func(w io.Writer) colortable.Clipboard {
	return termenv.NewOutput(w)
}

// isTerminal reports whether w is attached to a terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "colortable:", err)
		os.Exit(1)
	}
}

// floatFlag is a float64 flag that remembers whether it was set.
type floatFlag struct {
	v   float64
	set bool
}

func (f *floatFlag) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *floatFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("colortable", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  = fs.String("config", "", "Path to a TOML or YAML configuration file")
		delimiter   = fs.String("delimiter", "", "Field delimiter: comma|pipe|tab|semicolon|auto")
		mode        = fs.String("mode", "", "Color scope: table|rows|columns")
		low         = fs.String("low", "", "Low endpoint color (#rrggbb)")
		high        = fs.String("high", "", "High endpoint color (#rrggbb)")
		outPath     = fs.String("o", "", "Write HTML to this file instead of stdout")
		copyHTML    = fs.Bool("copy", false, "Copy the HTML to the clipboard (OSC 52)")
		showPreview = fs.Bool("preview", false, "Print a colored preview to stderr when it is a terminal")
		verbose     = fs.Bool("verbose", false, "Enable verbose logging")
		showVersion = fs.Bool("version", false, "Print version and exit")
		rangeMin    floatFlag
		rangeMax    floatFlag
	)
	fs.Var(&rangeMin, "min", "Lower bound of the color range (table mode only)")
	fs.Var(&rangeMax, "max", "Upper bound of the color range (table mode only)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "colortable %s (commit %s, built %s)\n", version, commit, date)
		return nil
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	text, source, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	if *delimiter != "" {
		cfg.Delimiter = *delimiter
	} else if fs.Arg(0) != "" && cfg.Delimiter == format.Comma.String() {
		if d := format.DetectFromFilename(fs.Arg(0)); d != format.Auto {
			cfg.Delimiter = d.String()
		}
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if rangeMin.set {
		cfg.Range.Min = &rangeMin.v
	}
	if rangeMax.set {
		cfg.Range.Max = &rangeMax.v
	}
	if *low != "" {
		cfg.Colors.Low = *low
		cfg.Colors.Custom = true
	}
	if *high != "" {
		cfg.Colors.High = *high
		cfg.Colors.Custom = true
	}
	if *outPath != "" {
		cfg.Output.File = *outPath
	}
	cfg.Output.Copy = cfg.Output.Copy || *copyHTML
	cfg.Output.Preview = cfg.Output.Preview || *showPreview

	if _, ok := format.Parse(cfg.Delimiter); !ok {
		logger.Warn("unknown delimiter, using comma", "delimiter", cfg.Delimiter)
	}

	in := cfg.Inputs(text)
	logger.Debug("rendering",
		"source", source,
		"delimiter", in.Delimiter.String(),
		"mode", in.Mode.String(),
		"custom_colors", in.UseCustomColors,
	)

	out := colortable.Render(in)
	for _, w := range out.Warnings {
		logger.Warn(w.Message, "kind", w.Kind.String(), "line", w.Line)
	}
	logger.Debug("rendered",
		"rows", out.Table.RowCount(),
		"columns", out.Table.ColCount(),
		"bytes", len(out.HTML),
	)

	if err := writeOutput(cfg.Output.File, stdout, out.HTML); err != nil {
		return err
	}

	if cfg.Output.Copy {
		colortable.Copy(newClipboard(stderr), out)
		logger.Debug("handed HTML to clipboard")
	}

	if cfg.Output.Preview {
		if isTerminal(stderr) {
			fmt.Fprintln(stderr, preview.New(stderr).Render(out.Table))
		} else {
			logger.Debug("skipping preview, stderr is not a terminal")
		}
	}

	return nil
}

// readInput returns the table text from path, or from stdin when path is
// empty or "-".
func readInput(path string, stdin io.Reader) (string, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), path, nil
}

func writeOutput(path string, stdout io.Writer, html string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, html)
		return err
	}
	if err := os.WriteFile(path, []byte(html+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// convert converts values between units of distance, weight and temperature,
// and compares two quantities of the same kind.
//
// Usage:
//
//	convert distance 10 km mi
//	convert temperature 100            # uses the configured default units
//	convert compare 5 km 3 mi
//	convert compare -- -40 C -40 F     # "--" before a negative first value
//
// Output modes (auto-detected):
//
//	terminal  styled output (default when TTY)
//	text      plain lines (default when piped)
//	json      structured JSON for automation
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/dkoosis/convert/internal/config"
	"github.com/dkoosis/convert/internal/version"
	"github.com/dkoosis/convert/pkg/convert"
	"github.com/dkoosis/convert/pkg/render"
	"github.com/dkoosis/convert/pkg/units"
)

const usage = `Usage: convert <type> <value> [from] [to]
   or: convert compare <value1> <unit1> <value2> <unit2>
`

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// usageError marks errors caused by malformed invocations.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// configError marks errors raised while resolving configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// app carries per-invocation state shared by the commands.
type app struct {
	stdout, stderr io.Writer

	flags   config.CliFlags
	verbose bool

	logger    *zap.Logger
	converter *convert.Converter
	renderer  render.Renderer
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	_ = a.logger.Sync()
	return a.exitCode(err)
}

func (a *app) exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(a.stderr, "convert: %v\n", err)
		fmt.Fprint(a.stderr, usage)
		return exitUsage
	}
	fmt.Fprintf(a.stderr, "convert: %v\n", err)
	var ce *configError
	if errors.As(err, &ce) {
		return exitUsage
	}
	return exitFail
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "convert <type> <value> [from] [to]",
		Short: "Convert and compare distance, weight and temperature values",
		Long: `Convert a value between units of one family:

  distance     km, mi, m
  weight       g, oz, lb
  temperature  C, F, K

Temperature conversions may omit the units; the configured defaults are used.
Results are rounded to the configured precision (default 2 decimal places).`,
		Example: `  convert distance 10 km mi
  convert weight 1 lb g
  convert temperature 100 C K
  convert compare 5 km 3 mi`,
		Args:              a.usageArgs(cobra.RangeArgs(2, 4)),
		PersistentPreRunE: a.setup,
		RunE:              a.runConvert,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	// Stop flag parsing at the type so negative values pass through as arguments.
	root.Flags().SetInterspersed(false)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigPath, "config", "", "Config file (default: ./"+config.FileName+" or user config dir)")
	pf.IntVar(&a.flags.Precision, "precision", config.DefaultPrecision, "Decimal places for results")
	pf.StringVar(&a.flags.Format, "format", config.DefaultFormat, "Output format: auto, terminal, text, json")
	pf.StringVar(&a.flags.ThemeName, "theme", config.DefaultTheme, "Theme: default, orca, mono")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "Disable colors")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(a.newCompareCmd(), a.newVersionCmd())
	return root
}

func (a *app) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <value1> <unit1> <value2> <unit2>",
		Short: "Report which of two quantities is larger and by how much",
		Long: `Compare two quantities of the same family. The second value is converted
into the first unit; the difference is reported in the first unit.`,
		Args: a.usageArgs(cobra.ExactArgs(4)),
		RunE: a.runCompare,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  a.usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "convert %s (commit %s, built %s)\n",
				version.Version, version.CommitHash, version.BuildDate)
			return nil
		},
	}
}

// usageArgs wraps a cobra argument validator so its failures map to the usage exit code.
func (a *app) usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// setup resolves configuration and builds the logger, converter and renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		a.logger = newDebugLogger(a.stderr)
	}

	flags := a.flags
	flags.PrecisionSet = cmd.Flags().Changed("precision")
	flags.FormatSet = cmd.Flags().Changed("format")
	flags.ThemeSet = cmd.Flags().Changed("theme")
	flags.NoColorSet = cmd.Flags().Changed("no-color")

	cfg, err := config.ResolveConfig(flags)
	if err != nil {
		return &configError{err: err}
	}
	a.logger.Debug("configuration resolved",
		zap.String("path", cfg.ConfigPath),
		zap.Int("precision", cfg.Precision),
		zap.String("precision_source", cfg.PrecisionSource),
		zap.String("temperature_from", string(cfg.TemperatureFrom)),
		zap.String("temperature_to", string(cfg.TemperatureTo)),
		zap.String("temperature_source", cfg.TemperatureSource),
		zap.String("format", cfg.Format),
		zap.String("format_source", cfg.FormatSource),
		zap.String("theme", cfg.Theme),
		zap.Bool("no_color", cfg.NoColor))

	a.converter = convert.New(cfg.Settings())
	a.renderer = selectRenderer(resolveFormat(cfg.Format, a.stdout), cfg.Theme, cfg.NoColor, a.stdout)
	return nil
}

func (a *app) runConvert(_ *cobra.Command, args []string) error {
	family, raw := args[0], args[1]
	var from, to units.Unit
	if len(args) > 2 {
		from = units.Unit(args[2])
	}
	if len(args) > 3 {
		to = units.Unit(args[3])
	}
	a.logger.Debug("converting",
		zap.String("type", family),
		zap.String("value", raw),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	value, err := convert.ParseValue(raw)
	if err != nil {
		return err
	}
	conv, err := a.converter.Resolve(family, value, from, to)
	if err != nil {
		return err
	}
	a.logger.Debug("converted", zap.Float64("result", conv.Result))

	fmt.Fprint(a.stdout, a.renderer.RenderConversion(conv))
	return nil
}

func (a *app) runCompare(_ *cobra.Command, args []string) error {
	value1, err := convert.ParseValue(args[0])
	if err != nil {
		return err
	}
	value2, err := convert.ParseValue(args[2])
	if err != nil {
		return err
	}
	unit1, unit2 := units.Unit(args[1]), units.Unit(args[3])
	a.logger.Debug("comparing",
		zap.Float64("value1", value1),
		zap.String("unit1", string(unit1)),
		zap.Float64("value2", value2),
		zap.String("unit2", string(unit2)))

	cmp, err := a.converter.Compare(value1, unit1, value2, unit2)
	if err != nil {
		return err
	}
	a.logger.Debug("compared",
		zap.String("larger", cmp.Larger),
		zap.Float64("difference", cmp.Difference),
		zap.Bool("equal", cmp.Equal))

	fmt.Fprint(a.stdout, a.renderer.RenderComparison(cmp))
	return nil
}

// newDebugLogger returns a console logger at debug level writing to w.
func newDebugLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func selectRenderer(mode, themeName string, noColor bool, w io.Writer) render.Renderer {
	if mode != render.ModeTerminal {
		return render.New(mode, render.Theme{}, 0)
	}
	theme := render.ThemeByName(themeName)
	if noColor {
		theme = render.MonoTheme()
	}
	width, _ := termSize(w)
	return render.NewTerminal(theme, width)
}

// resolveFormat maps "auto" to terminal for a TTY and text otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if isTTYWriter(w) {
		return render.ModeTerminal
	}
	return render.ModeText
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/convert/pkg/convert"
	"github.com/dkoosis/convert/pkg/units"
)

// Resolution sources, recorded on ResolvedConfig for debugging.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// MaxPrecision is the largest precision float64 results can meaningfully carry.
const MaxPrecision = 15

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Precision       int
	TemperatureFrom units.Unit
	TemperatureTo   units.Unit
	Format          string
	Theme           string
	NoColor         bool

	// Resolution metadata (for debugging)
	ConfigPath        string
	PrecisionSource   string
	TemperatureSource string
	FormatSource      string
	ThemeSource       string
	NoColorSource     string
}

// Settings returns the converter settings carried by the resolved config.
func (r *ResolvedConfig) Settings() convert.Settings {
	return convert.Settings{
		Precision: r.Precision,
		Temperature: convert.TemperatureDefaults{
			From: r.TemperatureFrom,
			To:   r.TemperatureTo,
		},
	}
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
// This is the single source of truth for config resolution.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg, path, err := LoadConfig(cliFlags.ConfigPath)
	if err != nil {
		return nil, err
	}
	resolved, err := resolve(cliFlags, appCfg)
	if err != nil {
		return nil, err
	}
	resolved.ConfigPath = path
	return resolved, nil
}

func resolve(cliFlags CliFlags, appCfg *AppConfig) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{
		Precision:         DefaultPrecision,
		TemperatureFrom:   DefaultTemperatureFrom,
		TemperatureTo:     DefaultTemperatureTo,
		Format:            DefaultFormat,
		Theme:             DefaultTheme,
		PrecisionSource:   SourceDefault,
		TemperatureSource: SourceDefault,
		FormatSource:      SourceDefault,
		ThemeSource:       SourceDefault,
		NoColorSource:     SourceDefault,
	}

	// File values
	if appCfg.Precision != nil {
		resolved.Precision = *appCfg.Precision
		resolved.PrecisionSource = SourceFile
	}
	if appCfg.Temperature.DefaultFrom != "" {
		resolved.TemperatureFrom = units.Unit(appCfg.Temperature.DefaultFrom)
		resolved.TemperatureSource = SourceFile
	}
	if appCfg.Temperature.DefaultTo != "" {
		resolved.TemperatureTo = units.Unit(appCfg.Temperature.DefaultTo)
		resolved.TemperatureSource = SourceFile
	}
	if appCfg.Format != "" {
		resolved.Format = appCfg.Format
		resolved.FormatSource = SourceFile
	}
	if appCfg.Theme != "" {
		resolved.Theme = appCfg.Theme
		resolved.ThemeSource = SourceFile
	}
	if appCfg.NoColor {
		resolved.NoColor = true
		resolved.NoColorSource = SourceFile
	}

	// Resolve Precision with priority: CLI > ENV > file > default
	if cliFlags.PrecisionSet {
		resolved.Precision = cliFlags.Precision
		resolved.PrecisionSource = SourceCLI
	} else if val := os.Getenv("CONVERT_PRECISION"); val != "" {
		p, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid CONVERT_PRECISION %q: %w", val, err)
		}
		resolved.Precision = p
		resolved.PrecisionSource = SourceEnv
	}

	// Resolve Format with priority: CLI > ENV > file > default
	if cliFlags.FormatSet {
		resolved.Format = cliFlags.Format
		resolved.FormatSource = SourceCLI
	} else if val := os.Getenv("CONVERT_FORMAT"); val != "" {
		resolved.Format = val
		resolved.FormatSource = SourceEnv
	}

	// Resolve Theme with priority: CLI > ENV > file > default
	if cliFlags.ThemeSet {
		resolved.Theme = cliFlags.ThemeName
		resolved.ThemeSource = SourceCLI
	} else if val := os.Getenv("CONVERT_THEME"); val != "" {
		resolved.Theme = val
		resolved.ThemeSource = SourceEnv
	}

	// Resolve NoColor with priority: CLI > ENV > file > default
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = SourceCLI
	} else if envNoColor := getEnvBool("CONVERT_NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
		resolved.NoColorSource = SourceEnv
	} else if os.Getenv("NO_COLOR") != "" {
		// https://no-color.org: any non-empty value disables color
		resolved.NoColor = true
		resolved.NoColorSource = SourceEnv
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig validates the resolved configuration and returns errors for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got: %d", MaxPrecision, cfg.Precision)
	}

	for _, u := range []units.Unit{cfg.TemperatureFrom, cfg.TemperatureTo} {
		fam, err := units.Classify(u)
		if err != nil {
			return fmt.Errorf("invalid default temperature unit: %w", err)
		}
		if fam != units.Temperature {
			return fmt.Errorf("default temperature unit %q is a %s unit", u, fam)
		}
	}

	validFormats := map[string]bool{"auto": true, "terminal": true, "text": true, "json": true}
	if !validFormats[cfg.Format] {
		return fmt.Errorf("invalid format value: %s (must be: auto, terminal, text, json)", cfg.Format)
	}

	validThemes := map[string]bool{"default": true, "orca": true, "mono": true}
	if !validThemes[cfg.Theme] {
		return fmt.Errorf("invalid theme value: %s (must be: default, orca, mono)", cfg.Theme)
	}

	return nil
}

// Package config handles configuration loading and resolution for convert.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--precision, --format, --theme, --no-color)
//  2. Environment variables (CONVERT_PRECISION, CONVERT_FORMAT, CONVERT_THEME, CONVERT_NO_COLOR, NO_COLOR)
//  3. YAML config file (--config path, .convert.yaml in the working directory, or ~/.config/convert/.convert.yaml)
//  4. Hardcoded defaults
//
// The resolved configuration is read once at startup and never reloaded.
//
// # File Format
//
//	precision: 2
//	temperature:
//	  defaultFrom: C
//	  defaultTo: F
//	format: auto
//	theme: default
//
// # Key Configuration Options
//
//   - precision: decimal places applied to every conversion result and comparison difference
//   - temperature.defaultFrom / defaultTo: units used when a temperature conversion omits them
//   - format: output mode (auto, terminal, text, json)
//   - theme: terminal theme (default, orca, mono)
package config

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/convert/pkg/units"
)

func intPtr(v int) *int { return &v }

func TestResolveConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.Equal(t, units.Celsius, cfg.TemperatureFrom)
	assert.Equal(t, units.Fahrenheit, cfg.TemperatureTo)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.ConfigPath)
	assert.Equal(t, SourceDefault, cfg.PrecisionSource)
}

func TestResolveConfig_PriorityOrder(t *testing.T) {
	tests := []struct {
		name          string
		file          *AppConfig
		cliFlags      CliFlags
		envVars       map[string]string
		wantPrecision int
		wantSource    string
	}{
		{
			name:          "file overrides default",
			file:          &AppConfig{Precision: intPtr(3)},
			wantPrecision: 3,
			wantSource:    SourceFile,
		},
		{
			name:          "explicit zero in file is honored",
			file:          &AppConfig{Precision: intPtr(0)},
			wantPrecision: 0,
			wantSource:    SourceFile,
		},
		{
			name:          "env overrides file",
			file:          &AppConfig{Precision: intPtr(3)},
			envVars:       map[string]string{"CONVERT_PRECISION": "5"},
			wantPrecision: 5,
			wantSource:    SourceEnv,
		},
		{
			name:          "CLI overrides env",
			file:          &AppConfig{Precision: intPtr(3)},
			cliFlags:      CliFlags{Precision: 1, PrecisionSet: true},
			envVars:       map[string]string{"CONVERT_PRECISION": "5"},
			wantPrecision: 1,
			wantSource:    SourceCLI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := resolve(tt.cliFlags, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrecision, cfg.Precision)
			assert.Equal(t, tt.wantSource, cfg.PrecisionSource)
		})
	}
}

func TestResolveConfig_ReadsLocalFile(t *testing.T) {
	isolate(t)

	content := "precision: 4\ntemperature:\n  defaultFrom: F\n  defaultTo: K\nformat: text\n"
	require.NoError(t, os.WriteFile(FileName, []byte(content), 0o600))

	cfg, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, FileName, cfg.ConfigPath)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, units.Fahrenheit, cfg.TemperatureFrom)
	assert.Equal(t, units.Kelvin, cfg.TemperatureTo)
	assert.Equal(t, SourceFile, cfg.TemperatureSource)
	assert.Equal(t, "text", cfg.Format)

	s := cfg.Settings()
	assert.Equal(t, 4, s.Precision)
	assert.Equal(t, units.Fahrenheit, s.Temperature.From)
	assert.Equal(t, units.Kelvin, s.Temperature.To)
}

func TestResolveConfig_OutputSettings(t *testing.T) {
	isolate(t)
	t.Setenv("CONVERT_FORMAT", "json")
	t.Setenv("CONVERT_THEME", "orca")

	cfg, err := resolve(CliFlags{ThemeName: "mono", ThemeSet: true}, &AppConfig{Format: "terminal", Theme: "default"})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, SourceEnv, cfg.FormatSource)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, SourceCLI, cfg.ThemeSource)
}

func TestResolveConfig_NoColor(t *testing.T) {
	t.Run("NO_COLOR convention", func(t *testing.T) {
		isolate(t)
		t.Setenv("NO_COLOR", "1")

		cfg, err := resolve(CliFlags{}, &AppConfig{})
		require.NoError(t, err)
		assert.True(t, cfg.NoColor)
		assert.Equal(t, SourceEnv, cfg.NoColorSource)
	})

	t.Run("CONVERT_NO_COLOR wins over NO_COLOR", func(t *testing.T) {
		isolate(t)
		t.Setenv("NO_COLOR", "1")
		t.Setenv("CONVERT_NO_COLOR", "false")

		cfg, err := resolve(CliFlags{}, &AppConfig{})
		require.NoError(t, err)
		assert.False(t, cfg.NoColor)
	})

	t.Run("CLI wins over env", func(t *testing.T) {
		isolate(t)
		t.Setenv("CONVERT_NO_COLOR", "true")

		cfg, err := resolve(CliFlags{NoColor: false, NoColorSet: true}, &AppConfig{})
		require.NoError(t, err)
		assert.False(t, cfg.NoColor)
		assert.Equal(t, SourceCLI, cfg.NoColorSource)
	})
}

func TestResolveConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		file    *AppConfig
		flags   CliFlags
		env     map[string]string
		wantErr string
	}{
		{"negative precision", &AppConfig{Precision: intPtr(-1)}, CliFlags{}, nil, "precision must be between"},
		{"precision too large", &AppConfig{}, CliFlags{Precision: 16, PrecisionSet: true}, nil, "precision must be between"},
		{"precision env not a number", &AppConfig{}, CliFlags{}, map[string]string{"CONVERT_PRECISION": "two"}, "CONVERT_PRECISION"},
		{"unknown default unit", &AppConfig{Temperature: TemperatureConfig{DefaultFrom: "R"}}, CliFlags{}, nil, "unknown unit"},
		{"default unit from wrong family", &AppConfig{Temperature: TemperatureConfig{DefaultTo: "km"}}, CliFlags{}, nil, "distance unit"},
		{"unknown format", &AppConfig{Format: "yaml"}, CliFlags{}, nil, "invalid format value"},
		{"unknown theme", &AppConfig{}, CliFlags{ThemeName: "neon", ThemeSet: true}, nil, "invalid theme value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := resolve(tt.flags, tt.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

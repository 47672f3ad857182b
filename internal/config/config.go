package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory and
// in the user config directory.
const FileName = ".convert.yaml"

// Constants for default values.
const (
	DefaultPrecision       = 2
	DefaultTemperatureFrom = "C"
	DefaultTemperatureTo   = "F"
	DefaultFormat          = "auto"
	DefaultTheme           = "default"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	Precision  int
	Format     string
	ThemeName  string
	NoColor    bool

	// Flags to track if they were explicitly set by the user
	PrecisionSet bool
	FormatSet    bool
	ThemeSet     bool
	NoColorSet   bool
}

// AppConfig represents the contents of a .convert.yaml file.
type AppConfig struct {
	// Precision is a pointer so an explicit 0 can be told apart from an absent key.
	Precision   *int              `yaml:"precision"`
	Temperature TemperatureConfig `yaml:"temperature"`
	Format      string            `yaml:"format"`
	Theme       string            `yaml:"theme"`
	NoColor     bool              `yaml:"no_color"`
}

// TemperatureConfig holds the fallback units for temperature conversions.
type TemperatureConfig struct {
	DefaultFrom string `yaml:"defaultFrom"`
	DefaultTo   string `yaml:"defaultTo"`
}

// LoadConfig reads the configuration file. An explicit path must exist; without
// one the local file and then the user config directory are tried, and a
// missing file yields an empty AppConfig. The returned path is empty when no
// file was read.
func LoadConfig(explicitPath string) (*AppConfig, string, error) {
	configPath := explicitPath
	if configPath == "" {
		configPath = getConfigPath()
	}
	if configPath == "" {
		return &AppConfig{}, "", nil
	}

	// #nosec G304 -- path is user-supplied via --config or discovered by getConfigPath
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, configPath, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	appCfg, err := parseConfig(data)
	if err != nil {
		return nil, configPath, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	return appCfg, configPath, nil
}

func parseConfig(data []byte) (*AppConfig, error) {
	var appCfg AppConfig
	if err := yaml.Unmarshal(data, &appCfg); err != nil {
		return nil, err
	}
	return &appCfg, nil
}

// getConfigPath tries to find the .convert.yaml configuration file.
// It checks the local directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not suitable for path construction.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "convert", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

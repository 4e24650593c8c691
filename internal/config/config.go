package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/nbview/pkg/chart"
	"github.com/dkoosis/nbview/pkg/format"
)

// FileName is the config file looked up in the working directory and user config dir.
const FileName = ".nbview.yaml"

// ChartConfig holds chart display settings.
type ChartConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	AlignDivID bool `yaml:"align_div_id"`
}

// TableConfig holds table display settings.
type TableConfig struct {
	NullText       string `yaml:"null_text"`
	FloatDigits    int    `yaml:"float_digits"`
	DateFormat     string `yaml:"date_format"`
	DateTimeFormat string `yaml:"datetime_format"`
	MaxRows        int    `yaml:"max_rows"`
}

// AppConfig represents the application's configuration from .nbview.yaml.
type AppConfig struct {
	Locale string      `yaml:"locale"`
	Theme  string      `yaml:"theme"`
	Debug  bool        `yaml:"debug"`
	Chart  ChartConfig `yaml:"chart"`
	Table  TableConfig `yaml:"table"`
}

// Constants for default values.
const (
	DefaultTheme   = "default"
	DefaultMaxRows = 50
)

// Defaults returns the hardcoded configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		Locale: format.DefaultLocale,
		Theme:  DefaultTheme,
		Chart: ChartConfig{
			Width:  chart.DefaultSize.Width,
			Height: chart.DefaultSize.Height,
		},
		Table: TableConfig{
			FloatDigits:    format.DefaultFloatDigits,
			DateFormat:     format.DefaultDateLayout,
			DateTimeFormat: format.DefaultDateTimeLayout,
			MaxRows:        DefaultMaxRows,
		},
	}
}

// LoadConfig loads configuration from path, or from the discovered config file
// when path is empty. A missing discovered file yields defaults; an explicit
// path that cannot be read is an error.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := Defaults()
	explicit := path != ""
	if !explicit {
		path = getConfigPath()
		if path == "" {
			slog.Debug("no config file found, using defaults")
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Decoding over the defaults keeps unset keys and honors explicit zeros.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	slog.Debug("loaded config file", "path", path)
	return cfg, nil
}

// getConfigPath tries to find the .nbview.yaml configuration file.
// It checks the local directory first, then the user config dir.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		slog.Debug("user config dir unavailable", "error", err, "path", configHome)
		return ""
	}
	xdgPath := filepath.Join(configHome, "nbview", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dkoosis/nbview/pkg/chart"
	"github.com/dkoosis/nbview/pkg/format"
	"github.com/dkoosis/nbview/pkg/grid"
	"github.com/dkoosis/nbview/pkg/notebook"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	Locale     string
	ThemeName  string
	Debug      bool
	DebugSet   bool
	Width      int
	Height     int
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	*AppConfig
	NoColor bool

	// Resolution metadata (for debugging)
	LocaleSource string // "cli", "env", "file"
	ThemeSource  string // "cli", "env", "no-color", "file"
	DebugSource  string // "cli", "env", "file"
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
func ResolveConfig(flags CliFlags) (*ResolvedConfig, error) {
	appCfg, err := LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	resolved := &ResolvedConfig{
		AppConfig:    appCfg,
		LocaleSource: "file",
		ThemeSource:  "file",
		DebugSource:  "file",
	}

	switch {
	case flags.Locale != "":
		resolved.Locale, resolved.LocaleSource = flags.Locale, "cli"
	case os.Getenv("NBVIEW_LOCALE") != "":
		resolved.Locale, resolved.LocaleSource = os.Getenv("NBVIEW_LOCALE"), "env"
	}

	if noColor := getEnvBool("NO_COLOR"); noColor != nil {
		resolved.NoColor = *noColor
	} else if os.Getenv("NO_COLOR") != "" {
		resolved.NoColor = true
	}
	switch {
	case flags.ThemeName != "":
		resolved.Theme, resolved.ThemeSource = flags.ThemeName, "cli"
	case resolved.NoColor:
		resolved.Theme, resolved.ThemeSource = "mono", "no-color"
	case os.Getenv("NBVIEW_THEME") != "":
		resolved.Theme, resolved.ThemeSource = os.Getenv("NBVIEW_THEME"), "env"
	}

	if flags.DebugSet {
		resolved.Debug, resolved.DebugSource = flags.Debug, "cli"
	} else if envDebug := getEnvBool("NBVIEW_DEBUG"); envDebug != nil {
		resolved.Debug, resolved.DebugSource = *envDebug, "env"
	}

	if flags.Width > 0 {
		resolved.Chart.Width = flags.Width
	}
	if flags.Height > 0 {
		resolved.Chart.Height = flags.Height
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// NotebookOptions maps the resolved configuration onto adapter options.
func (r *ResolvedConfig) NotebookOptions(logger *slog.Logger) notebook.Options {
	return notebook.Options{
		Format: format.Options{
			Locale:         r.Locale,
			FloatDigits:    format.Digits(r.Table.FloatDigits),
			DateLayout:     r.Table.DateFormat,
			DateTimeLayout: r.Table.DateTimeFormat,
		},
		Grid: grid.Options{
			NullText:    r.Table.NullText,
			MaxTextRows: r.Table.MaxRows,
		},
		ChartSize:  chart.Size{Width: r.Chart.Width, Height: r.Chart.Height},
		AlignDivID: r.Chart.AlignDivID,
		Logger:     logger,
	}
}

// getEnvBool returns the first parseable boolean among keys, or nil.
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

// validateResolvedConfig validates the resolved configuration.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d (must be positive)", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Table.FloatDigits < 0 {
		return fmt.Errorf("invalid table.float_digits %d (must be >= 0)", cfg.Table.FloatDigits)
	}
	if cfg.Table.MaxRows < 0 {
		return fmt.Errorf("invalid table.max_rows %d (must be >= 0)", cfg.Table.MaxRows)
	}
	if _, err := format.NewSmart(format.Options{Locale: cfg.Locale}); err != nil {
		return err
	}
	validThemes := map[string]bool{"default": true, "orca": true, "mono": true}
	if !validThemes[cfg.Theme] {
		return fmt.Errorf("invalid theme: %s (must be: default, orca, mono)", cfg.Theme)
	}
	return nil
}

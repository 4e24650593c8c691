// Package config handles configuration loading and merging for nbview.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--locale, --theme, --debug, --width, --height)
//  2. Environment variables (NBVIEW_LOCALE, NBVIEW_THEME, NBVIEW_DEBUG, NO_COLOR)
//  3. YAML config file (.nbview.yaml in the local directory or $XDG_CONFIG_HOME/nbview/.nbview.yaml)
//  4. Hardcoded defaults
//
// # Example
//
//	locale: en
//	theme: orca
//	chart:
//	  width: 800
//	  height: 600
//	  align_div_id: false
//	table:
//	  null_text: ""
//	  float_digits: 4
//	  date_format: "2006-01-02"
//	  datetime_format: "2006-01-02 15:04:05"
//	  max_rows: 50
//
// chart.align_div_id makes a chart's div carry the chart's own id. It is off by
// default: the div keeps its generated chart_<token> id and a warning is logged
// when the chart asks to be drawn into a different element.
package config

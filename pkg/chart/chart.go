// Package chart defines the closed set of chart variants the notebook adapters
// know how to display.
//
// Every variant implements Chart. Accept emits the variant's drawing function
// into a jscode.Writer; the caller decides how that function gets invoked.
// Google charts are drawn by the external Google Charts loader; the other
// families draw an inline SVG and need no loader.
package chart

import (
	"errors"
	"fmt"

	"github.com/dkoosis/nbview/pkg/jscode"
)

// Kind identifies a concrete chart variant. It doubles as the display kind.
type Kind string

const (
	KindGoogle   Kind = "chart/google"
	KindCategory Kind = "chart/category"
	KindXY       Kind = "chart/xy"
	KindPie      Kind = "chart/pie"
)

// Kinds lists every chart variant in registration order.
func Kinds() []Kind {
	return []Kind{KindGoogle, KindCategory, KindXY, KindPie}
}

// UsesLoader reports whether charts of this kind are drawn by an external
// loader that must be initialized before the drawing function runs.
func (k Kind) UsesLoader() bool { return k == KindGoogle }

// ErrNoData is returned by Accept when a chart has nothing to draw.
var ErrNoData = errors.New("chart has no data")

// DefaultSize is the display size used when a chart has no preferred size.
var DefaultSize = Size{Width: 800, Height: 600}

// Size is a pixel size.
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Options carries presentation settings common to all variants.
type Options struct {
	// ID is the DOM element id the chart should draw into, if the caller
	// wants a specific one.
	ID            string
	Title         string
	PreferredSize *Size
}

// SizeOr returns the preferred size, or def when none is set.
func (o Options) SizeOr(def Size) Size {
	if o.PreferredSize == nil {
		return def
	}
	return *o.PreferredSize
}

// WithSize returns a copy of o with the preferred size set.
func (o Options) WithSize(width, height int) Options {
	o.PreferredSize = &Size{Width: width, Height: height}
	return o
}

// Chart is implemented by every chart variant.
type Chart interface {
	Kind() Kind
	Options() Options
	// Accept emits a JavaScript function named functionName that draws the
	// chart into the element whose id is divID.
	Accept(w *jscode.Writer, functionName, divID string) error
}

func (k Kind) String() string { return string(k) }

// ParseKind maps a short name ("google", "category", "xy", "pie") or a full
// kind string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if s == string(k) || "chart/"+s == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

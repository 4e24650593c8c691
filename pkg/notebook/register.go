package notebook

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/dkoosis/nbview/pkg/chart"
	"github.com/dkoosis/nbview/pkg/display"
	"github.com/dkoosis/nbview/pkg/format"
	"github.com/dkoosis/nbview/pkg/frame"
	"github.com/dkoosis/nbview/pkg/grid"
)

// Registrar is the part of display.Registry the adapters need.
type Registrar interface {
	Register(kind display.Kind, fn display.Func) error
}

// Options configures the adapters. The zero value is usable.
type Options struct {
	// Formatter renders non-nil cells. Nil builds a format.Smart from Format.
	Formatter format.Formatter
	Format    format.Options
	Grid      grid.Options

	// ChartSize is used for charts without a preferred size. Zero means chart.DefaultSize.
	ChartSize chart.Size
	// AlignDivID makes the chart div carry the chart's own id when it has one.
	// Off by default, which keeps the div id at chart_<token>.
	AlignDivID bool
	// Tokens mints unique chart tokens. Nil uses NewToken.
	Tokens func() string

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Outcome is the result of one registration entry.
type Outcome struct {
	Kind display.Kind
	Err  error
}

// Report collects the outcomes of RegisterAll.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the entries that did not register.
func (r Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Registered returns the kinds that registered successfully.
func (r Report) Registered() []display.Kind {
	var out []display.Kind
	for _, o := range r.Outcomes {
		if o.Err == nil {
			out = append(out, o.Kind)
		}
	}
	return out
}

// Err joins every failure, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, o := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", o.Kind, o.Err))
	}
	return errors.Join(errs...)
}

// RegisterAll registers the table adapter and every chart adapter.
func RegisterAll(reg Registrar, opts Options) Report {
	var rep Report
	rep.Outcomes = append(rep.Outcomes, Outcome{
		Kind: frame.DisplayKind,
		Err:  RegisterTableDisplay(reg, opts),
	})
	rep.Outcomes = append(rep.Outcomes, RegisterChartDisplay(reg, opts)...)
	if failed := len(rep.Failed()); failed > 0 {
		opts.logger().Warn("some display adapters did not register",
			"failed", failed, "registered", len(rep.Outcomes)-failed)
	}
	return rep
}

// RegisterTableDisplay registers the frame adapter. A failure is logged and
// returned; the registry is left without a frame adapter.
func RegisterTableDisplay(reg Registrar, opts Options) error {
	return guard(opts.logger(), frame.DisplayKind, func() error {
		f := opts.Formatter
		if f == nil {
			smart, err := format.NewSmart(opts.Format)
			if err != nil {
				return err
			}
			f = smart
		}
		return reg.Register(frame.DisplayKind, TableDisplay(f, opts.Grid))
	})
}

// RegisterChartDisplay registers one adapter per chart kind. Each entry is
// attempted independently.
func RegisterChartDisplay(reg Registrar, opts Options) []Outcome {
	r := NewChartRenderer(opts)
	fn := display.Typed(func(_ display.Cell, c chart.Chart) (display.Result, error) {
		html, err := r.HTML(c)
		if err != nil {
			return display.Result{}, err
		}
		return display.HTML(html), nil
	})

	kinds := chart.Kinds()
	out := make([]Outcome, 0, len(kinds))
	for _, k := range kinds {
		kind := display.Kind(k)
		err := guard(opts.logger(), kind, func() error {
			return reg.Register(kind, fn)
		})
		out = append(out, Outcome{Kind: kind, Err: err})
	}
	return out
}

// guard runs one registration step, turning panics into errors and logging failures.
func guard(log *slog.Logger, kind display.Kind, step func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
			log.Error("display registration panicked",
				"kind", kind, "error", err, "stack", string(debug.Stack()))
		}
	}()
	if err = step(); err != nil {
		log.Error("display registration failed", "kind", kind, "error", err)
	}
	return err
}

package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/dkoosis/nbview/pkg/frame"
)

// FromTable builds a chart of the given kind from table columns. x names the
// domain column; ys name one or more value columns. Pie charts use only ys[0].
func FromTable(kind Kind, t *frame.Table, x string, ys []string, opts Options) (Chart, error) {
	if len(ys) == 0 {
		return nil, fmt.Errorf("%s: at least one value column is required", kind)
	}
	domain, err := t.Column(x)
	if err != nil {
		return nil, err
	}
	values := make([][]any, len(ys))
	for i, y := range ys {
		if values[i], err = t.Column(y); err != nil {
			return nil, err
		}
	}

	switch kind {
	case KindGoogle:
		g := &Google{Opts: opts, Type: GoogleLine, Columns: append([]string{x}, ys...)}
		for r := range domain {
			row := []any{jsonValue(domain[r])}
			for i := range ys {
				row = append(row, jsonValue(values[i][r]))
			}
			g.Rows = append(g.Rows, row)
		}
		return g, nil
	case KindCategory:
		c := &Category{Opts: opts}
		for _, d := range domain {
			c.Categories = append(c.Categories, fmt.Sprint(d))
		}
		for i, y := range ys {
			s := Series{Name: y, Values: make([]float64, len(domain))}
			for r := range domain {
				s.Values[r] = toFloat(values[i][r])
			}
			c.Series = append(c.Series, s)
		}
		return c, nil
	case KindXY:
		c := &XY{Opts: opts}
		for i, y := range ys {
			s := XYSeries{Name: y}
			for r := range domain {
				s.Points = append(s.Points, Point{X: toFloat(domain[r]), Y: toFloat(values[i][r])})
			}
			c.Series = append(c.Series, s)
		}
		return c, nil
	case KindPie:
		c := &Pie{Opts: opts}
		for r := range domain {
			c.Slices = append(c.Slices, Slice{Label: fmt.Sprint(domain[r]), Value: toFloat(values[0][r])})
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
}

// toFloat converts numeric cells; anything else becomes NaN and is skipped when drawing.
func toFloat(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case float64:
		return x
	case float32:
		return float64(x)
	case time.Time:
		return float64(x.Unix())
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

// jsonValue keeps google rows encodable: non-finite floats become null.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		if !finite(x) {
			return nil
		}
	case time.Time:
		return x.Format(time.DateOnly)
	}
	return v
}

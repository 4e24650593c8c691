package notebook

import (
	"fmt"

	"github.com/dkoosis/nbview/pkg/display"
	"github.com/dkoosis/nbview/pkg/format"
	"github.com/dkoosis/nbview/pkg/frame"
	"github.com/dkoosis/nbview/pkg/grid"
)

// TableDisplay returns the frame callback. It displays the grid into the cell
// itself and returns display.Hidden.
func TableDisplay(f format.Formatter, opts grid.Options) display.Func {
	return display.Typed(func(out display.Cell, fr frame.Frame) (display.Result, error) {
		g, err := NewGrid(fr, f, opts)
		if err != nil {
			return display.Result{}, err
		}
		if err := g.Display(out); err != nil {
			return display.Result{}, err
		}
		return display.Hidden, nil
	})
}

// NewGrid builds the grid display for a frame. Absent cells have no content;
// every other cell goes through f.
func NewGrid(fr frame.Frame, f format.Formatter, opts grid.Options) (*grid.Grid, error) {
	return grid.New(fr.RowCount(), fr.ColCount(), Labels(fr), func(row, col int) (string, bool) {
		v := fr.Value(row, col)
		if v == nil {
			return "", false
		}
		return f.Format(v), true
	}, opts)
}

// Labels returns the frame's column keys as display strings, in column order.
func Labels(fr frame.Frame) []string {
	keys := fr.ColumnKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprint(k)
	}
	return out
}

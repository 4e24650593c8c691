// Package grid is the grid-display object the table adapter builds: a sized
// rows × columns view with column labels and a per-cell accessor. Displaying a
// grid evaluates every cell once and publishes HTML, plain-text and JSON forms
// into the output cell.
package grid

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dkoosis/nbview/pkg/display"
)

// ErrShape is returned when the label count disagrees with the column count.
var ErrShape = errors.New("grid shape mismatch")

// CellFunc returns the display text for (row, col). ok == false means the cell
// has no content.
type CellFunc func(row, col int) (text string, ok bool)

// Options tunes the rendered forms. They never change which cells are evaluated.
type Options struct {
	// NullText is shown for cells with no content in text and HTML forms.
	NullText string
	// MaxTextRows limits the text/plain form. Zero means no limit.
	MaxTextRows int
}

// Grid is a lazily evaluated table display.
type Grid struct {
	rows, cols int
	labels     []string
	cell       CellFunc
	opts       Options

	once sync.Once
	snap *Snapshot
}

// New builds a rows × cols grid.
func New(rows, cols int, labels []string, cell CellFunc, opts Options) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrShape, rows, cols)
	}
	if len(labels) != cols {
		return nil, fmt.Errorf("%w: %d labels for %d columns", ErrShape, len(labels), cols)
	}
	if cell == nil {
		return nil, errors.New("grid: nil cell func")
	}
	return &Grid{rows: rows, cols: cols, labels: append([]string(nil), labels...), cell: cell, opts: opts}, nil
}

func (g *Grid) Rows() int        { return g.rows }
func (g *Grid) Cols() int        { return g.cols }
func (g *Grid) Labels() []string { return append([]string(nil), g.labels...) }
func (g *Grid) Options() Options { return g.opts }

// Snapshot evaluates every cell exactly once and caches the result.
func (g *Grid) Snapshot() *Snapshot {
	g.once.Do(func() {
		s := &Snapshot{Columns: g.labels, Values: make([][]*string, g.rows)}
		for r := 0; r < g.rows; r++ {
			row := make([]*string, g.cols)
			for c := 0; c < g.cols; c++ {
				if text, ok := g.cell(r, c); ok {
					row[c] = &text
				}
			}
			s.Values[r] = row
		}
		g.snap = s
	})
	return g.snap
}

// Bundle renders every form of the grid.
func (g *Grid) Bundle() (display.Bundle, error) {
	s := g.Snapshot()
	data, err := s.JSON()
	if err != nil {
		return nil, err
	}
	markup, err := s.HTML(g.opts.NullText)
	if err != nil {
		return nil, err
	}
	return display.Bundle{
		display.MIMEGrid: data,
		display.MIMEHTML: markup,
		display.MIMEText: s.Text(g.opts.NullText, g.opts.MaxTextRows),
	}, nil
}

// Display publishes the grid into out.
func (g *Grid) Display(out display.Cell) error {
	b, err := g.Bundle()
	if err != nil {
		return fmt.Errorf("rendering grid: %w", err)
	}
	return out.Publish(b)
}

// Snapshot is the evaluated content of a grid. A nil value is a cell with no content.
type Snapshot struct {
	Columns []string    `json:"columns"`
	Values  [][]*string `json:"values"`
}

// Cell returns the text at (row, col) and whether it has content.
func (s *Snapshot) Cell(row, col int) (string, bool) {
	v := s.Values[row][col]
	if v == nil {
		return "", false
	}
	return *v, true
}

type gridJSON struct {
	RowCount int `json:"rowCount"`
	ColCount int `json:"colCount"`
	*Snapshot
}

// JSON encodes the snapshot with its dimensions.
func (s *Snapshot) JSON() (string, error) {
	data, err := json.Marshal(gridJSON{RowCount: len(s.Values), ColCount: len(s.Columns), Snapshot: s})
	if err != nil {
		return "", fmt.Errorf("encoding grid: %w", err)
	}
	return string(data), nil
}

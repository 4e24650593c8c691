// Package frame defines the tabular data handle consumed by the notebook
// display adapters, plus a small in-memory implementation.
//
// Frames are read-only from the adapters' point of view: the display path
// only asks for dimensions, column keys and individual cell values.
package frame

import (
	"errors"
	"fmt"
)

// DisplayKind is the display kind reported by Table values.
const DisplayKind = "frame"

// ErrRaggedRow is returned when a row's width differs from the column count.
var ErrRaggedRow = errors.New("row width does not match column count")

// ErrUnknownColumn is returned when a column key is not present in a frame.
var ErrUnknownColumn = errors.New("unknown column")

// Frame is a rows × named-columns view over tabular data.
type Frame interface {
	RowCount() int
	ColCount() int
	// ColumnKeys returns the column keys in column order.
	ColumnKeys() []any
	// Value returns the cell at (row, col). A nil result means the cell is absent.
	Value(row, col int) any
}

// Table is an immutable, in-memory Frame.
type Table struct {
	keys []any
	rows [][]any
}

// NewTable builds a Table from column keys and row-major values.
// Rows are copied; every row must have exactly len(keys) cells.
func NewTable(keys []any, rows [][]any) (*Table, error) {
	t := &Table{
		keys: append([]any(nil), keys...),
		rows: make([][]any, 0, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(keys) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(keys), ErrRaggedRow)
		}
		t.rows = append(t.rows, append([]any(nil), row...))
	}
	return t, nil
}

// MustTable is NewTable that panics on error. Intended for tests and fixtures.
func MustTable(keys []any, rows [][]any) *Table {
	t, err := NewTable(keys, rows)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) RowCount() int { return len(t.rows) }

func (t *Table) ColCount() int { return len(t.keys) }

func (t *Table) ColumnKeys() []any { return append([]any(nil), t.keys...) }

func (t *Table) Value(row, col int) any { return t.rows[row][col] }

// DisplayKind reports the kind the display registry dispatches on.
func (t *Table) DisplayKind() string { return DisplayKind }

// String is the plain fallback used when no table display is registered.
func (t *Table) String() string {
	return fmt.Sprintf("Table[%d rows x %d cols]", t.RowCount(), t.ColCount())
}

// ColumnIndex returns the index of the column whose key prints as name.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, k := range t.keys {
		if fmt.Sprint(k) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
}

// Column returns a copy of the values in the named column.
func (t *Table) Column(name string) ([]any, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Select returns a new Table holding only the named columns, in the order given.
func (t *Table) Select(names ...string) (*Table, error) {
	idx := make([]int, len(names))
	keys := make([]any, len(names))
	for i, name := range names {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = j
		keys[i] = t.keys[j]
	}
	rows := make([][]any, len(t.rows))
	for r, row := range t.rows {
		out := make([]any, len(idx))
		for i, j := range idx {
			out[i] = row[j]
		}
		rows[r] = out
	}
	return &Table{keys: keys, rows: rows}, nil
}

// Head returns a Table with at most n rows. n <= 0 returns t unchanged.
func (t *Table) Head(n int) *Table {
	if n <= 0 || n >= len(t.rows) {
		return t
	}
	return &Table{keys: t.keys, rows: t.rows[:n]}
}

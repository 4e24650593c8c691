package frame

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_RejectsRaggedRows(t *testing.T) {
	_, err := NewTable([]any{"a", "b"}, [][]any{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrRaggedRow)
}

func TestNewTable_CopiesInput(t *testing.T) {
	row := []any{1, 2}
	tbl := MustTable([]any{"a", "b"}, [][]any{row})
	row[0] = 99
	assert.Equal(t, 1, tbl.Value(0, 0))
}

func TestTable_SelectReordersColumns(t *testing.T) {
	tbl := MustTable([]any{"a", "b", "c"}, [][]any{{1, 2, 3}, {4, nil, 6}})

	sel, err := tbl.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []any{"c", "a"}, sel.ColumnKeys())
	assert.Equal(t, 2, sel.RowCount())
	assert.Equal(t, 6, sel.Value(1, 0))
	assert.Equal(t, 4, sel.Value(1, 1))

	_, err = tbl.Select("missing")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestTable_Head(t *testing.T) {
	tbl := MustTable([]any{"a"}, [][]any{{1}, {2}, {3}})
	assert.Equal(t, 2, tbl.Head(2).RowCount())
	assert.Equal(t, 3, tbl.Head(0).RowCount())
	assert.Equal(t, 3, tbl.Head(10).RowCount())
}

func TestTable_ColumnKeysAreNotAliased(t *testing.T) {
	tbl := MustTable([]any{"a"}, nil)
	keys := tbl.ColumnKeys()
	keys[0] = "z"
	assert.Equal(t, []any{"a"}, tbl.ColumnKeys())
	assert.Equal(t, DisplayKind, tbl.DisplayKind())
}

func TestReadCSV_InfersColumnTypes(t *testing.T) {
	input := strings.Join([]string{
		"id,Name,Price,Active,Listed",
		"1,Acura,15.9,true,2017-01-02",
		"2,Audi,,false,2017-03-04",
		"3,BMW,30,true,",
	}, "\n")

	tbl, err := ReadCSV(strings.NewReader(input), CSVOptions{ExcludeColumns: []int{0}})
	require.NoError(t, err)

	assert.Equal(t, []any{"Name", "Price", "Active", "Listed"}, tbl.ColumnKeys())
	assert.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, "Acura", tbl.Value(0, 0))
	assert.Equal(t, 15.9, tbl.Value(0, 1))
	assert.Nil(t, tbl.Value(1, 1), "empty cells are absent")
	assert.Equal(t, 30.0, tbl.Value(2, 1))
	assert.Equal(t, false, tbl.Value(1, 2))
	assert.Equal(t, time.Date(2017, 3, 4, 0, 0, 0, 0, time.UTC), tbl.Value(1, 3))
	assert.Nil(t, tbl.Value(2, 3))
}

func TestReadCSV_IntegerColumns(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("n\n1\n2\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), tbl.Value(1, 0))
}

func TestReadCSV_EmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	assert.ErrorIs(t, err, ErrNoHeader)
}

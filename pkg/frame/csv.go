package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrNoHeader is returned when CSV input has no header row.
var ErrNoHeader = errors.New("csv input has no header row")

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	// ExcludeColumns lists zero-based column indexes to drop.
	ExcludeColumns []int
	// DateLayouts are tried in order when inferring time columns.
	DateLayouts []string
	// Comma overrides the field delimiter. Zero means ','.
	Comma rune
}

// DefaultDateLayouts are the layouts tried when CSVOptions.DateLayouts is empty.
var DefaultDateLayouts = []string{time.DateOnly, time.RFC3339, time.DateTime}

// ReadCSV reads a header row followed by data rows and infers a type per column.
//
// A column is typed int64, float64, bool or time.Time when every non-empty cell
// parses as that type; otherwise it stays string. Empty cells become nil.
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	keep := make([]int, 0, len(header))
	for i := range header {
		if !slices.Contains(opts.ExcludeColumns, i) {
			keep = append(keep, i)
		}
	}

	layouts := opts.DateLayouts
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}

	keys := make([]any, len(keep))
	for i, j := range keep {
		keys[i] = strings.TrimSpace(header[j])
	}

	body := records[1:]
	rows := make([][]any, len(body))
	for r := range body {
		rows[r] = make([]any, len(keep))
	}
	for i, j := range keep {
		cells := make([]string, len(body))
		for r, rec := range body {
			if j < len(rec) {
				cells[r] = strings.TrimSpace(rec[j])
			}
		}
		parse := inferColumn(cells, layouts)
		for r, cell := range cells {
			if cell == "" {
				continue
			}
			rows[r][i] = parse(cell)
		}
	}
	return &Table{keys: keys, rows: rows}, nil
}

// inferColumn picks the narrowest parser that accepts every non-empty cell.
func inferColumn(cells []string, layouts []string) func(string) any {
	all := func(ok func(string) bool) bool {
		seen := false
		for _, c := range cells {
			if c == "" {
				continue
			}
			seen = true
			if !ok(c) {
				return false
			}
		}
		return seen
	}

	switch {
	case all(func(s string) bool { _, err := strconv.ParseInt(s, 10, 64); return err == nil }):
		return func(s string) any { v, _ := strconv.ParseInt(s, 10, 64); return v }
	case all(func(s string) bool { _, err := strconv.ParseFloat(s, 64); return err == nil }):
		return func(s string) any { v, _ := strconv.ParseFloat(s, 64); return v }
	case all(func(s string) bool { _, err := strconv.ParseBool(s); return err == nil }):
		return func(s string) any { v, _ := strconv.ParseBool(s); return v }
	}
	for _, layout := range layouts {
		if all(func(s string) bool { _, err := time.Parse(layout, s); return err == nil }) {
			return func(s string) any { v, _ := time.Parse(layout, s); return v }
		}
	}
	return func(s string) any { return s }
}

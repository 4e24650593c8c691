package grid

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCellWidth caps a column's display width in the text form.
const maxCellWidth = 40

// Text renders an aligned plain-text table. Widths are display cells, so wide
// runes line up. maxRows <= 0 renders every row.
func (s *Snapshot) Text(nullText string, maxRows int) string {
	rows := len(s.Values)
	shown := rows
	if maxRows > 0 && maxRows < rows {
		shown = maxRows
	}

	cell := func(r, c int) string {
		if text, ok := s.Cell(r, c); ok {
			return text
		}
		return nullText
	}

	widths := make([]int, len(s.Columns))
	for c, name := range s.Columns {
		widths[c] = runewidth.StringWidth(name)
		for r := 0; r < shown; r++ {
			widths[c] = max(widths[c], runewidth.StringWidth(cell(r, c)))
		}
		widths[c] = min(widths[c], maxCellWidth)
	}

	var sb strings.Builder
	writeRow := func(values func(c int) string) {
		parts := make([]string, len(s.Columns))
		for c := range s.Columns {
			v := runewidth.Truncate(values(c), widths[c], "…")
			parts[c] = runewidth.FillRight(v, widths[c])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}

	writeRow(func(c int) string { return s.Columns[c] })
	writeRow(func(c int) string { return strings.Repeat("-", widths[c]) })
	for r := 0; r < shown; r++ {
		writeRow(func(c int) string { return cell(r, c) })
	}
	if shown < rows {
		fmt.Fprintf(&sb, "… %d more rows\n", rows-shown)
	}
	return sb.String()
}

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dkoosis/nbview/pkg/grid"
)

// Terminal renders a snapshot as a bordered, styled table via lipgloss.
type Terminal struct {
	theme    Theme
	nullText string
	maxRows  int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, nullText string, maxRows int) *Terminal {
	return &Terminal{theme: theme, nullText: nullText, maxRows: maxRows}
}

// Render formats the snapshot for terminal display.
func (t *Terminal) Render(s *grid.Snapshot) string {
	shown := len(s.Values)
	if t.maxRows > 0 && t.maxRows < shown {
		shown = t.maxRows
	}

	rows := make([][]string, shown)
	for r := 0; r < shown; r++ {
		row := make([]string, len(s.Columns))
		for c := range s.Columns {
			if text, ok := s.Cell(r, c); ok {
				row[c] = text
			} else {
				row[c] = t.nullText
			}
		}
		rows[r] = row
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.theme.Border).
		Headers(s.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.theme.Header
			}
			if row < 0 || row >= shown || col >= len(s.Columns) {
				return t.theme.Cell
			}
			if _, ok := s.Cell(row, col); !ok {
				return t.theme.Null
			}
			return t.theme.Cell
		})

	var sb strings.Builder
	sb.WriteString(tbl.Render())
	sb.WriteString("\n")
	if shown < len(s.Values) {
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("… %d more rows", len(s.Values)-shown)))
		sb.WriteString("\n")
	}
	return sb.String()
}

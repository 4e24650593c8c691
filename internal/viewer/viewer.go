// Package viewer is an interactive terminal browser for grid snapshots, built
// on bubbletea and the bubbles table component.
package viewer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/nbview/pkg/grid"
)

const (
	maxColumnWidth = 30
	chromeHeight   = 4 // title, blank line, status line, spare
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Model is the bubbletea model for the viewer.
type Model struct {
	title string
	rows  int
	table table.Model
}

// New builds a viewer over s. height is the initial table height in rows.
func New(title string, s *grid.Snapshot, nullText string, height int) Model {
	cols := make([]table.Column, len(s.Columns))
	for c, name := range s.Columns {
		cols[c] = table.Column{Title: name, Width: runewidth.StringWidth(name)}
	}
	rows := make([]table.Row, len(s.Values))
	for r := range s.Values {
		row := make(table.Row, len(s.Columns))
		for c := range s.Columns {
			text, ok := s.Cell(r, c)
			if !ok {
				text = nullText
			}
			row[c] = text
			cols[c].Width = max(cols[c].Width, runewidth.StringWidth(text))
		}
		rows[r] = row
	}
	for c := range cols {
		cols[c].Width = min(cols[c].Width, maxColumnWidth)
	}
	if height <= 0 {
		height = 20
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{title: title, rows: len(rows), table: t}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	status := fmt.Sprintf("row %d/%d · ↑/↓ move · q quit", m.Cursor()+1, m.rows)
	if m.rows == 0 {
		status = "no rows · q quit"
	}
	return titleStyle.Render(m.title) + "\n\n" + m.table.View() + "\n" + statusStyle.Render(status) + "\n"
}

// Cursor returns the selected row index.
func (m Model) Cursor() int { return m.table.Cursor() }

// Run starts the viewer and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

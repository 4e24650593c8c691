package render

import "github.com/dkoosis/nbview/pkg/grid"

// Text renders aligned plain text with no ANSI codes, suitable for pipes.
type Text struct {
	nullText string
	maxRows  int
}

// NewText creates a plain-text renderer.
func NewText(nullText string, maxRows int) *Text {
	return &Text{nullText: nullText, maxRows: maxRows}
}

func (t *Text) Render(s *grid.Snapshot) string {
	return s.Text(t.nullText, t.maxRows)
}

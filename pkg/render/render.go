// Package render provides output renderers for evaluated grid snapshots
// outside a notebook: styled terminal tables, plain text and JSON.
package render

import "github.com/dkoosis/nbview/pkg/grid"

// Renderer converts a grid snapshot to formatted output.
type Renderer interface {
	Render(s *grid.Snapshot) string
}

// ByName returns the renderer for a format name: "terminal", "text" or "json".
func ByName(name string, theme Theme, nullText string, maxRows int) (Renderer, bool) {
	switch name {
	case "terminal":
		return NewTerminal(theme, nullText, maxRows), true
	case "text":
		return NewText(nullText, maxRows), true
	case "json":
		return NewJSON(), true
	default:
		return nil, false
	}
}

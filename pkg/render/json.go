package render

import (
	"encoding/json"

	"github.com/dkoosis/nbview/pkg/grid"
)

// JSON renders a snapshot as indented JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonOutput struct {
	Version  string      `json:"version"`
	RowCount int         `json:"rowCount"`
	ColCount int         `json:"colCount"`
	Columns  []string    `json:"columns"`
	Values   [][]*string `json:"values"`
}

// Render formats the snapshot as JSON.
func (j *JSON) Render(s *grid.Snapshot) string {
	out := jsonOutput{
		Version:  "1.0",
		RowCount: len(s.Values),
		ColCount: len(s.Columns),
		Columns:  s.Columns,
		Values:   s.Values,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

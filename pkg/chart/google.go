package chart

import (
	"fmt"

	"github.com/dkoosis/nbview/pkg/jscode"
)

// GoogleType names a google.visualization chart class.
type GoogleType string

const (
	GoogleLine    GoogleType = "LineChart"
	GoogleArea    GoogleType = "AreaChart"
	GoogleBar     GoogleType = "BarChart"
	GoogleColumn  GoogleType = "ColumnChart"
	GoogleScatter GoogleType = "ScatterChart"
	GooglePie     GoogleType = "PieChart"
)

// Google is drawn by the Google Charts corechart package.
type Google struct {
	Opts    Options
	Type    GoogleType
	Columns []string
	Rows    [][]any
	// Extra is merged into the draw options.
	Extra map[string]any
}

func (g *Google) Kind() Kind          { return KindGoogle }
func (g *Google) DisplayKind() string { return string(KindGoogle) }
func (g *Google) Options() Options    { return g.Opts }

func (g *Google) Accept(w *jscode.Writer, functionName, divID string) error {
	if len(g.Columns) == 0 {
		return ErrNoData
	}
	table := make([][]any, 0, len(g.Rows)+1)
	header := make([]any, len(g.Columns))
	for i, c := range g.Columns {
		header[i] = c
	}
	table = append(table, header)
	table = append(table, g.Rows...)

	data, err := jscode.Literal(table)
	if err != nil {
		return fmt.Errorf("google chart data: %w", err)
	}

	opts := map[string]any{}
	for k, v := range g.Extra {
		opts[k] = v
	}
	if g.Opts.Title != "" {
		opts["title"] = g.Opts.Title
	}
	options, err := jscode.Literal(opts)
	if err != nil {
		return fmt.Errorf("google chart options: %w", err)
	}
	target, err := jscode.Literal(divID)
	if err != nil {
		return err
	}

	chartType := g.Type
	if chartType == "" {
		chartType = GoogleLine
	}

	w.Block(fmt.Sprintf("function %s()", functionName), func(w *jscode.Writer) {
		w.Linef("var data = google.visualization.arrayToDataTable(%s);", data)
		w.Linef("var options = %s;", options)
		w.Linef("var chart = new google.visualization.%s(document.getElementById(%s));", chartType, target)
		w.Line("chart.draw(data, options);")
	})
	return nil
}

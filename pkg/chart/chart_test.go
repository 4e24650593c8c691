package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/nbview/pkg/frame"
	"github.com/dkoosis/nbview/pkg/jscode"
)

func TestKind_UsesLoaderOnlyForGoogle(t *testing.T) {
	for _, k := range Kinds() {
		assert.Equal(t, k == KindGoogle, k.UsesLoader(), k)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("xy")
	require.NoError(t, err)
	assert.Equal(t, KindXY, k)

	k, err = ParseKind("chart/pie")
	require.NoError(t, err)
	assert.Equal(t, KindPie, k)

	_, err = ParseKind("radar")
	assert.Error(t, err)
}

func TestOptions_SizeOr(t *testing.T) {
	assert.Equal(t, DefaultSize, Options{}.SizeOr(DefaultSize))
	assert.Equal(t, Size{Width: 400, Height: 300}, Options{}.WithSize(400, 300).SizeOr(DefaultSize))
}

func TestGoogle_AcceptEmitsDrawFunction(t *testing.T) {
	g := &Google{
		Opts:    Options{Title: "Sales"},
		Type:    GoogleColumn,
		Columns: []string{"Year", "Sales"},
		Rows:    [][]any{{"2016", 10}, {"2017", 12}},
	}
	w := jscode.New()
	require.NoError(t, g.Accept(w, "drawChart_abc", "chart_abc"))

	js := w.String()
	assert.True(t, strings.HasPrefix(js, "function drawChart_abc() {\n"))
	assert.Contains(t, js, `google.visualization.arrayToDataTable([["Year","Sales"],["2016",10],["2017",12]])`)
	assert.Contains(t, js, `new google.visualization.ColumnChart(document.getElementById("chart_abc"))`)
	assert.Contains(t, js, `"title":"Sales"`)
	assert.Contains(t, js, "chart.draw(data, options);")
}

func TestGoogle_AcceptWithoutColumns(t *testing.T) {
	assert.ErrorIs(t, (&Google{}).Accept(jscode.New(), "f", "d"), ErrNoData)
}

func TestSVGCharts_AcceptInjectsMarkup(t *testing.T) {
	charts := []Chart{
		&Category{Categories: []string{"a", "b"}, Series: []Series{{Name: "s", Values: []float64{1, -2}}}},
		&XY{Series: []XYSeries{{Name: "s", Points: []Point{{1, 2}, {2, 4}}}}},
		&Pie{Slices: []Slice{{Label: "x", Value: 1}, {Label: "y", Value: 3}}},
	}
	for _, c := range charts {
		t.Run(string(c.Kind()), func(t *testing.T) {
			w := jscode.New()
			require.NoError(t, c.Accept(w, "drawChart_t", "target"))
			js := w.String()
			assert.Contains(t, js, "function drawChart_t() {")
			assert.Contains(t, js, `document.getElementById("target")`)
			assert.Contains(t, js, "div.innerHTML = ")
			assert.Contains(t, js, `\u003csvg`, "markup is JSON-escaped")
			assert.NotContains(t, js, "google.")
		})
	}
}

func TestSVGCharts_DrawWaitsForDocument(t *testing.T) {
	w := jscode.New()
	c := &Pie{Slices: []Slice{{Label: "x", Value: 1}}}
	require.NoError(t, c.Accept(w, "drawChart_t", "target"))

	want := "function drawChart_t() {\n" +
		"    function draw() {\n" +
		"        var div = document.getElementById(\"target\");\n" +
		"        if (div) {\n"
	js := w.String()
	assert.True(t, strings.HasPrefix(js, want), js)
	assert.Contains(t, js, "    if (document.readyState === \"loading\") {\n"+
		"        document.addEventListener(\"DOMContentLoaded\", draw);\n"+
		"    }\n"+
		"    else {\n"+
		"        draw();\n"+
		"    }\n"+
		"}\n")
}

func TestSVGCharts_EmptyDataFails(t *testing.T) {
	for _, c := range []Chart{&Category{}, &XY{}, &Pie{Slices: []Slice{{Label: "z", Value: 0}}}} {
		assert.ErrorIs(t, c.Accept(jscode.New(), "f", "d"), ErrNoData, c.Kind())
	}
}

func TestCategory_SVGEscapesLabels(t *testing.T) {
	c := &Category{
		Opts:       Options{Title: "A & B"},
		Categories: []string{"<x>"},
		Series:     []Series{{Name: "s", Values: []float64{1}}},
	}
	svg := c.SVG(Size{Width: 200, Height: 100})
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100"`))
	assert.Contains(t, svg, "A &amp; B")
	assert.Contains(t, svg, "&lt;x&gt;")
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestPie_SingleSliceIsFullCircle(t *testing.T) {
	p := &Pie{Slices: []Slice{{Label: "all", Value: 5}}}
	svg := p.SVG(DefaultSize)
	assert.Contains(t, svg, "<circle")
	assert.NotContains(t, svg, "<path")
}

func TestFromTable(t *testing.T) {
	tbl := frame.MustTable(
		[]any{"Year", "Sales", "Cost"},
		[][]any{{int64(2016), 10.0, 4.0}, {int64(2017), nil, 5.0}},
	)

	c, err := FromTable(KindCategory, tbl, "Year", []string{"Sales", "Cost"}, Options{})
	require.NoError(t, err)
	cat := c.(*Category)
	assert.Equal(t, []string{"2016", "2017"}, cat.Categories)
	require.Len(t, cat.Series, 2)
	assert.Equal(t, 10.0, cat.Series[0].Values[0])

	c, err = FromTable(KindGoogle, tbl, "Year", []string{"Sales"}, Options{ID: "p"})
	require.NoError(t, err)
	g := c.(*Google)
	assert.Equal(t, []string{"Year", "Sales"}, g.Columns)
	assert.Equal(t, []any{int64(2017), nil}, g.Rows[1])
	assert.Equal(t, "p", g.Options().ID)

	_, err = FromTable(KindXY, tbl, "Year", []string{"Nope"}, Options{})
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)

	_, err = FromTable(KindPie, tbl, "Year", nil, Options{})
	assert.Error(t, err)
}

package notebook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dkoosis/nbview/pkg/chart"
	"github.com/dkoosis/nbview/pkg/htmlcode"
	"github.com/dkoosis/nbview/pkg/jscode"
)

// NewToken returns a random token with no dashes, unique per displayed chart.
func NewToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// ChartRenderer turns charts into embeddable HTML.
type ChartRenderer struct {
	size       chart.Size
	alignDivID bool
	tokens     func() string
	log        *slog.Logger
}

// NewChartRenderer builds a renderer from the chart-related options.
func NewChartRenderer(opts Options) *ChartRenderer {
	r := &ChartRenderer{
		size:       opts.ChartSize,
		alignDivID: opts.AlignDivID,
		tokens:     opts.Tokens,
		log:        opts.logger(),
	}
	if r.size.Width <= 0 || r.size.Height <= 0 {
		r.size = chart.DefaultSize
	}
	if r.tokens == nil {
		r.tokens = NewToken
	}
	return r
}

// FunctionName is the drawing function for a token.
func FunctionName(token string) string { return "drawChart_" + token }

// DivID is the generated element id for a token.
func DivID(token string) string { return "chart_" + token }

// HTML renders one script element followed by one div sized to the chart.
//
// The div id is always chart_<token> unless AlignDivID is set, while the
// script draws into the chart's own id when it has one. Those can differ; the
// mismatch is logged rather than corrected.
func (r *ChartRenderer) HTML(c chart.Chart) (string, error) {
	token := r.tokens()
	opts := c.Options()
	target := scriptTarget(opts, token)

	divID := DivID(token)
	if r.alignDivID {
		divID = target
	}
	if divID != target {
		r.log.Warn("chart div id differs from the id the script draws into",
			"kind", c.Kind(), "div_id", divID, "chart_id", target)
	}

	script, err := Script(c, token)
	if err != nil {
		return "", err
	}
	size := opts.SizeOr(r.size)
	return htmlcode.Create(func(d *htmlcode.Document) {
		d.NewElement("script", func(e *htmlcode.Element) {
			e.Attr("type", "text/javascript")
			e.Text(script)
		})
		d.NewElement("div", func(e *htmlcode.Element) {
			e.Attr("id", divID)
			e.Attr("style", fmt.Sprintf("float:left;width:%dpx;height:%dpx;", size.Width, size.Height))
		})
	})
}

// Script emits the JavaScript that draws c. Loader-backed charts register the
// drawing function as the loader callback; the rest invoke it directly.
func Script(c chart.Chart, token string) (string, error) {
	fn := FunctionName(token)
	target := scriptTarget(c.Options(), token)
	w := jscode.New()
	if c.Kind().UsesLoader() {
		w.NewLine().Write("google.charts.load('current', {'packages':['corechart']});")
		w.NewLine().Writef("google.charts.setOnLoadCallback(%s);", fn)
		w.NewLine()
	} else {
		w.Write("console.info('Writing charts...');")
		w.NewLine()
		w.Writef("%s();", fn)
	}
	w.NewLine().NewLine()
	if err := c.Accept(w, fn, target); err != nil {
		return "", fmt.Errorf("%s script: %w", c.Kind(), err)
	}
	return w.String(), nil
}

func scriptTarget(opts chart.Options, token string) string {
	if opts.ID != "" {
		return opts.ID
	}
	return DivID(token)
}

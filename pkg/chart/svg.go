package chart

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/dkoosis/nbview/pkg/jscode"
)

// palette cycles through series colors.
var palette = []string{"#3366cc", "#dc3912", "#ff9900", "#109618", "#990099", "#0099c6", "#dd4477", "#66aa00"}

func color(i int) string { return palette[i%len(palette)] }

const (
	marginLeft   = 56.0
	marginRight  = 20.0
	marginTop    = 40.0
	marginBottom = 48.0
)

// canvas writes SVG markup into a fixed viewBox.
type canvas struct {
	sb   strings.Builder
	w, h float64
}

func newCanvas(size Size, title string) *canvas {
	c := &canvas{w: float64(size.Width), h: float64(size.Height)}
	fmt.Fprintf(&c.sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="100%%" height="100%%" font-family="sans-serif" font-size="12">`,
		size.Width, size.Height)
	if title != "" {
		c.text(c.w/2, 24, "middle", title, `font-size="16" font-weight="bold"`)
	}
	return c
}

// plot returns the plotting rectangle inside the margins.
func (c *canvas) plot() (x, y, w, h float64) {
	return marginLeft, marginTop, math.Max(c.w-marginLeft-marginRight, 1), math.Max(c.h-marginTop-marginBottom, 1)
}

func (c *canvas) rect(x, y, w, h float64, fill string) {
	fmt.Fprintf(&c.sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`, num(x), num(y), num(w), num(h), fill)
}

func (c *canvas) line(x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(&c.sb, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`, num(x1), num(y1), num(x2), num(y2), stroke)
}

func (c *canvas) polyline(xs, ys []float64, stroke string) {
	pts := make([]string, len(xs))
	for i := range xs {
		pts[i] = num(xs[i]) + "," + num(ys[i])
	}
	fmt.Fprintf(&c.sb, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`, strings.Join(pts, " "), stroke)
}

func (c *canvas) circle(cx, cy, r float64, fill string) {
	fmt.Fprintf(&c.sb, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, num(cx), num(cy), num(r), fill)
}

func (c *canvas) path(d, fill string) {
	fmt.Fprintf(&c.sb, `<path d="%s" fill="%s" stroke="#ffffff"/>`, d, fill)
}

func (c *canvas) text(x, y float64, anchor, s string, extra ...string) {
	attrs := ""
	if len(extra) > 0 {
		attrs = " " + strings.Join(extra, " ")
	}
	fmt.Fprintf(&c.sb, `<text x="%s" y="%s" text-anchor="%s"%s>%s</text>`, num(x), num(y), anchor, attrs, html.EscapeString(s))
}

// axes draws the plot frame with min/max labels on the value axis.
func (c *canvas) axes(lo, hi float64) {
	x, y, w, h := c.plot()
	c.line(x, y+h, x+w, y+h, "#333333")
	c.line(x, y, x, y+h, "#333333")
	c.text(x-6, y+h, "end", label(lo))
	c.text(x-6, y+10, "end", label(hi))
}

// legend writes series names along the bottom margin.
func (c *canvas) legend(names []string) {
	x := marginLeft
	y := c.h - 14
	for i, name := range names {
		if name == "" {
			continue
		}
		c.rect(x, y-9, 10, 10, color(i))
		c.text(x+14, y, "start", name)
		x += 24 + float64(7*len(name))
	}
}

func (c *canvas) String() string {
	return c.sb.String() + "</svg>"
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

func label(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// span widens a degenerate range so scaling never divides by zero.
func span(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

// acceptSVG emits a drawing function that injects pre-rendered SVG markup.
// The injection waits for DOMContentLoaded while the page is still parsing,
// since the target div follows the script.
func acceptSVG(w *jscode.Writer, functionName, divID, svg string) error {
	target, err := jscode.Literal(divID)
	if err != nil {
		return err
	}
	markup, err := jscode.Literal(svg)
	if err != nil {
		return err
	}
	w.Block(fmt.Sprintf("function %s()", functionName), func(w *jscode.Writer) {
		w.Block("function draw()", func(w *jscode.Writer) {
			w.Linef("var div = document.getElementById(%s);", target)
			w.Block("if (div)", func(w *jscode.Writer) {
				w.Linef("div.innerHTML = %s;", markup)
			})
		})
		w.Block(`if (document.readyState === "loading")`, func(w *jscode.Writer) {
			w.Line(`document.addEventListener("DOMContentLoaded", draw);`)
		})
		w.Block("else", func(w *jscode.Writer) {
			w.Line("draw();")
		})
	})
	return nil
}

package chart

import (
	"fmt"
	"math"

	"github.com/dkoosis/nbview/pkg/jscode"
)

// Series is a named sequence of values, one per category.
type Series struct {
	Name   string
	Values []float64
}

// Category draws grouped vertical bars.
type Category struct {
	Opts       Options
	Categories []string
	Series     []Series
}

func (c *Category) Kind() Kind          { return KindCategory }
func (c *Category) DisplayKind() string { return string(KindCategory) }
func (c *Category) Options() Options    { return c.Opts }

func (c *Category) Accept(w *jscode.Writer, functionName, divID string) error {
	if len(c.Categories) == 0 || len(c.Series) == 0 {
		return ErrNoData
	}
	return acceptSVG(w, functionName, divID, c.SVG(c.Opts.SizeOr(DefaultSize)))
}

// SVG renders the chart at the given size.
func (c *Category) SVG(size Size) string {
	cv := newCanvas(size, c.Opts.Title)
	lo, hi := 0.0, 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			if finite(v) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	lo, hi = span(lo, hi)
	px, py, pw, ph := cv.plot()
	scale := func(v float64) float64 { return py + ph - (v-lo)/(hi-lo)*ph }

	group := pw / float64(len(c.Categories))
	bar := group * 0.8 / float64(len(c.Series))
	zero := scale(0)
	names := make([]string, len(c.Series))
	for si, s := range c.Series {
		names[si] = s.Name
		for ci := range c.Categories {
			if ci >= len(s.Values) || !finite(s.Values[ci]) {
				continue
			}
			top := scale(s.Values[ci])
			x := px + float64(ci)*group + group*0.1 + float64(si)*bar
			cv.rect(x, math.Min(top, zero), bar, math.Abs(zero-top), color(si))
		}
	}
	for ci, name := range c.Categories {
		cv.text(px+float64(ci)*group+group/2, py+ph+16, "middle", name)
	}
	cv.axes(lo, hi)
	cv.legend(names)
	return cv.String()
}

// Point is an (x, y) pair.
type Point struct{ X, Y float64 }

// XYSeries is a named sequence of points.
type XYSeries struct {
	Name       string
	Points     []Point
	ShowPoints bool
}

// XY draws line series on numeric axes.
type XY struct {
	Opts   Options
	Series []XYSeries
}

func (c *XY) Kind() Kind          { return KindXY }
func (c *XY) DisplayKind() string { return string(KindXY) }
func (c *XY) Options() Options    { return c.Opts }

func (c *XY) Accept(w *jscode.Writer, functionName, divID string) error {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	if n == 0 {
		return ErrNoData
	}
	return acceptSVG(w, functionName, divID, c.SVG(c.Opts.SizeOr(DefaultSize)))
}

// SVG renders the chart at the given size.
func (c *XY) SVG(size Size) string {
	cv := newCanvas(size, c.Opts.Title)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			if !finite(p.X) || !finite(p.Y) {
				continue
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if !finite(minX) {
		minX, maxX, minY, maxY = 0, 1, 0, 1
	}
	minX, maxX = span(minX, maxX)
	minY, maxY = span(minY, maxY)
	px, py, pw, ph := cv.plot()
	sx := func(v float64) float64 { return px + (v-minX)/(maxX-minX)*pw }
	sy := func(v float64) float64 { return py + ph - (v-minY)/(maxY-minY)*ph }

	names := make([]string, len(c.Series))
	for si, s := range c.Series {
		names[si] = s.Name
		var xs, ys []float64
		for _, p := range s.Points {
			if finite(p.X) && finite(p.Y) {
				xs, ys = append(xs, sx(p.X)), append(ys, sy(p.Y))
			}
		}
		if s.ShowPoints {
			for i := range xs {
				cv.circle(xs[i], ys[i], 3, color(si))
			}
		} else {
			cv.polyline(xs, ys, color(si))
		}
	}
	cv.axes(minY, maxY)
	cv.text(px, py+ph+16, "start", label(minX))
	cv.text(px+pw, py+ph+16, "end", label(maxX))
	cv.legend(names)
	return cv.String()
}

// Slice is one pie segment.
type Slice struct {
	Label string
	Value float64
}

// Pie draws proportional segments of a circle.
type Pie struct {
	Opts   Options
	Slices []Slice
}

func (c *Pie) Kind() Kind          { return KindPie }
func (c *Pie) DisplayKind() string { return string(KindPie) }
func (c *Pie) Options() Options    { return c.Opts }

func (c *Pie) Accept(w *jscode.Writer, functionName, divID string) error {
	if c.total() <= 0 {
		return ErrNoData
	}
	return acceptSVG(w, functionName, divID, c.SVG(c.Opts.SizeOr(DefaultSize)))
}

func (c *Pie) total() float64 {
	sum := 0.0
	for _, s := range c.Slices {
		if finite(s.Value) && s.Value > 0 {
			sum += s.Value
		}
	}
	return sum
}

// SVG renders the chart at the given size.
func (c *Pie) SVG(size Size) string {
	cv := newCanvas(size, c.Opts.Title)
	px, py, pw, ph := cv.plot()
	cx, cy := px+pw/2, py+ph/2
	r := math.Min(pw, ph) / 2
	total := c.total()

	names := make([]string, len(c.Slices))
	angle := -math.Pi / 2
	for i, s := range c.Slices {
		names[i] = s.Label
		if !finite(s.Value) || s.Value <= 0 || total <= 0 {
			continue
		}
		frac := s.Value / total
		if frac >= 1 {
			cv.circle(cx, cy, r, color(i))
			continue
		}
		end := angle + frac*2*math.Pi
		large := 0
		if frac > 0.5 {
			large = 1
		}
		d := fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
			num(cx), num(cy),
			num(cx+r*math.Cos(angle)), num(cy+r*math.Sin(angle)),
			num(r), num(r), large,
			num(cx+r*math.Cos(end)), num(cy+r*math.Sin(end)))
		cv.path(d, color(i))
		angle = end
	}
	cv.legend(names)
	return cv.String()
}

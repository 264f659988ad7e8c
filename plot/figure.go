package plot

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/message"

	"github.com/gogpu/svt"
)

// Figure is a 2-D line chart with fixed axis units. Curves are converted
// to the axis units when they are added, so every series on a figure is
// drawn on the same scale.
type Figure struct {
	x, y   svt.Measure
	opts   options
	series []series
}

type series struct {
	name  string
	color RGBA
	curve svt.Curve
	// band is set for envelopes, drawn as a filled region between
	// curve (lower) and upper.
	band  bool
	upper svt.Curve
}

// NewFigure creates a figure whose axes are expressed in x and y.
func NewFigure(x, y svt.Measure, opts ...Option) *Figure {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Figure{x: x, y: y, opts: o}
}

// Len returns the number of series added to the figure.
func (f *Figure) Len() int { return len(f.series) }

// AddCurve adds a 2-D curve. Its x and y components must be convertible to
// the figure's axis units.
func (f *Figure) AddCurve(name string, c svt.Curve) error {
	if c.Dim() != 2 {
		return fmt.Errorf("plot: curve %q is %d-D: %w", name, c.Dim(), svt.ErrInvalidDimensionality)
	}
	m, err := c.MatchUnits(f.x, f.y)
	if err != nil {
		return fmt.Errorf("plot: curve %q: %w", name, err)
	}
	f.series = append(f.series, series{name: name, color: f.nextColor(), curve: m})
	if n := gaps(m); n > 0 {
		svt.Logger().Warn("plot: curve has samples that will not be drawn", "name", name, "skipped", n)
	}
	svt.Logger().Debug("plot: added curve", "name", name, "samples", m.Len())
	return nil
}

// AddEnvelope adds the band between the point-wise minimum and maximum of
// two or more curves over their common x domain.
func (f *Figure) AddEnvelope(name string, curves ...svt.Curve) error {
	lo, hi, err := svt.Envelope(curves...)
	if err != nil {
		return fmt.Errorf("plot: envelope %q: %w", name, err)
	}
	if lo, err = lo.MatchUnits(f.x, f.y); err != nil {
		return fmt.Errorf("plot: envelope %q: %w", name, err)
	}
	if hi, err = hi.MatchUnits(f.x, f.y); err != nil {
		return fmt.Errorf("plot: envelope %q: %w", name, err)
	}
	f.series = append(f.series, series{name: name, color: f.nextColor(), curve: lo, band: true, upper: hi})
	svt.Logger().Debug("plot: added envelope", "name", name, "curves", len(curves), "samples", lo.Len())
	return nil
}

// nextColor walks the palette, then spreads further series around the
// hue circle.
func (f *Figure) nextColor() RGBA {
	n := len(f.series)
	if n < len(f.opts.palette) {
		return f.opts.palette[n]
	}
	return HSL(math.Mod(float64(n)*137.5, 360), 0.65, 0.45)
}

// SavePNG renders the figure to a PNG file.
func (f *Figure) SavePNG(path string) error {
	pm, err := f.Render()
	if err != nil {
		return err
	}
	return pm.SavePNG(path)
}

// WritePNG renders the figure and encodes it as PNG.
func (f *Figure) WritePNG(w io.Writer) error {
	pm, err := f.Render()
	if err != nil {
		return err
	}
	return pm.WritePNG(w)
}

// Render draws the figure into a new pixmap.
func (f *Figure) Render() (*Pixmap, error) {
	o := f.opts
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}
	if len(f.series) == 0 {
		return nil, ErrEmptyFigure
	}
	xlo, xhi, ylo, yhi, ok := f.bounds()
	if !ok {
		return nil, ErrNoFinitePoints
	}
	xs := niceScale(xlo, xhi, o.ticks)
	ys := niceScale(ylo, yhi, o.ticks)

	face, err := newFace(o.fontSize)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	pm := NewPixmap(o.width, o.height)
	pm.Clear(o.background)
	p := newPainter(pm, face)
	pr := message.NewPrinter(o.lang)

	xLabels := make([]string, len(xs.ticks))
	for i, t := range xs.ticks {
		xLabels[i] = xs.label(pr, t)
	}
	yLabels := make([]string, len(ys.ticks))
	yWidth := 0.0
	for i, t := range ys.ticks {
		yLabels[i] = ys.label(pr, t)
		yWidth = math.Max(yWidth, p.textWidth(yLabels[i]))
	}

	lh := p.lineHeight()
	a := area{
		x0: math.Round(yWidth + 16),
		y0: math.Round(2*lh + 8),
		x1: float64(o.width) - 20,
		y1: float64(o.height) - math.Round(2*lh+12),
	}
	if a.x1-a.x0 < 1 || a.y1-a.y0 < 1 {
		return nil, fmt.Errorf("%w: %dx%d leaves no room for the plot area", ErrInvalidSize, o.width, o.height)
	}
	tr := transform{a: a, xs: xs, ys: ys}

	f.drawGrid(p, tr, xLabels, yLabels)
	for _, s := range f.series {
		f.drawSeries(p, tr, s)
	}
	f.drawFrame(p, a)
	f.drawLabels(p, a)
	f.drawLegend(p, a)

	svt.Logger().Debug("plot: rendered figure",
		"width", o.width, "height", o.height, "series", len(f.series),
		"x", fmt.Sprintf("[%g, %g]", xs.lo, xs.hi), "y", fmt.Sprintf("[%g, %g]", ys.lo, ys.hi))
	return pm, nil
}

// bounds returns the extent of all finite samples.
func (f *Figure) bounds() (xlo, xhi, ylo, yhi float64, ok bool) {
	xlo, ylo = math.Inf(1), math.Inf(1)
	xhi, yhi = math.Inf(-1), math.Inf(-1)
	visit := func(c svt.Curve) {
		xs, ys := c.X().Floats(), c.Y().Floats()
		for i := range xs {
			if !finite(xs[i]) || !finite(ys[i]) {
				continue
			}
			xlo, xhi = math.Min(xlo, xs[i]), math.Max(xhi, xs[i])
			ylo, yhi = math.Min(ylo, ys[i]), math.Max(yhi, ys[i])
			ok = true
		}
	}
	for _, s := range f.series {
		visit(s.curve)
		if s.band {
			visit(s.upper)
		}
	}
	return xlo, xhi, ylo, yhi, ok
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// area is the plot rectangle in pixel coordinates.
type area struct{ x0, y0, x1, y1 float64 }

type transform struct {
	a      area
	xs, ys scale
}

func (t transform) px(x float64) float64 {
	return t.a.x0 + (x-t.xs.lo)/(t.xs.hi-t.xs.lo)*(t.a.x1-t.a.x0)
}

func (t transform) py(y float64) float64 {
	return t.a.y1 - (y-t.ys.lo)/(t.ys.hi-t.ys.lo)*(t.a.y1-t.a.y0)
}

// gaps counts the samples of c that runs skips.
func gaps(c svt.Curve) int {
	xs, ys := c.X().Floats(), c.Y().Floats()
	n := 0
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			n++
		}
	}
	return n
}

// runs maps a curve to pixel polylines, split at non-finite samples.
func (t transform) runs(c svt.Curve) [][]point {
	xs, ys := c.X().Floats(), c.Y().Floats()
	var out [][]point
	var cur []point
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, point{t.px(xs[i]), t.py(ys[i])})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func (f *Figure) drawGrid(p *painter, t transform, xLabels, yLabels []string) {
	o := f.opts
	ch := p.capHeight()
	x0, y0, x1, y1 := int(t.a.x0), int(t.a.y0), int(t.a.x1), int(t.a.y1)
	for i, v := range t.xs.ticks {
		x := int(math.Round(t.px(v)))
		p.vline(x, y0, y1, o.grid)
		p.vline(x, y1, y1+4, o.foreground)
		p.text(xLabels[i], float64(x), float64(y1)+6+ch, alignCenter, o.foreground)
	}
	for i, v := range t.ys.ticks {
		y := int(math.Round(t.py(v)))
		p.hline(x0, x1, y, o.grid)
		p.hline(x0-4, x0, y, o.foreground)
		p.text(yLabels[i], float64(x0)-7, float64(y)+ch/2, alignRight, o.foreground)
	}
}

func (f *Figure) drawSeries(p *painter, t transform, s series) {
	if s.band {
		upper := t.runs(s.upper)
		for i, lower := range t.runs(s.curve) {
			if i >= len(upper) {
				break
			}
			poly := append([]point(nil), lower...)
			for j := len(upper[i]) - 1; j >= 0; j-- {
				poly = append(poly, upper[i][j])
			}
			p.polygon(poly, s.color.WithAlpha(0.3))
		}
		for _, run := range upper {
			p.polyline(run, f.opts.lineWidth/2, s.color)
		}
	}
	width := f.opts.lineWidth
	if s.band {
		width /= 2
	}
	for _, run := range t.runs(s.curve) {
		p.polyline(run, width, s.color)
	}
}

func (f *Figure) drawFrame(p *painter, a area) {
	c := f.opts.foreground
	x0, y0, x1, y1 := int(a.x0), int(a.y0), int(a.x1), int(a.y1)
	p.hline(x0, x1, y0, c)
	p.hline(x0, x1, y1, c)
	p.vline(x0, y0, y1, c)
	p.vline(x1, y0, y1, c)
}

func axisTitle(label string, m svt.Measure) string {
	unit := ""
	if m != nil {
		unit = m.Label()
	}
	switch {
	case unit == "":
		return label
	case label == "":
		return "[" + unit + "]"
	default:
		return label + " [" + unit + "]"
	}
}

func (f *Figure) drawLabels(p *painter, a area) {
	o := f.opts
	lh := p.lineHeight()
	p.text(o.title, float64(o.width)/2, lh, alignCenter, o.foreground)
	p.text(axisTitle(o.yLabel, f.y), a.x0, a.y0-6, alignLeft, o.foreground)
	p.text(axisTitle(o.xLabel, f.x), (a.x0+a.x1)/2, float64(o.height)-6, alignCenter, o.foreground)
}

func (f *Figure) drawLegend(p *painter, a area) {
	var names []series
	width := 0.0
	for _, s := range f.series {
		if s.name != "" {
			names = append(names, s)
			width = math.Max(width, p.textWidth(s.name))
		}
	}
	if len(names) == 0 {
		return
	}
	o := f.opts
	lh := math.Ceil(p.lineHeight())
	ch := p.capHeight()
	const swatch, pad = 18, 6
	w := swatch + 3*pad + width
	x0 := a.x1 - w - pad
	y0 := a.y0 + pad
	p.fillRect(int(x0), int(y0), int(x0+w), int(y0+lh*float64(len(names))+pad), o.background.WithAlpha(0.85))
	for i, s := range names {
		y := y0 + pad/2 + lh*float64(i) + lh/2
		sx := x0 + pad
		if s.band {
			p.fillRect(int(sx), int(y-lh/4), int(sx+swatch), int(y+lh/4), s.color.WithAlpha(0.3))
		}
		p.polyline([]point{{sx, y}, {sx + swatch, y}}, o.lineWidth, s.color)
		p.text(s.name, sx+swatch+pad, y+ch/2, alignLeft, o.foreground)
	}
}

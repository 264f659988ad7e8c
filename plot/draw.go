package plot

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func newFace(size float64) (font.Face, error) {
	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("plot: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("plot: create face: %w", err)
	}
	return face, nil
}

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

type point struct{ x, y float64 }

// painter draws primitives into a pixmap.
type painter struct {
	img  *image.RGBA
	face font.Face
}

func newPainter(pm *Pixmap, face font.Face) *painter {
	return &painter{img: pm.canvas(), face: face}
}

// fillRect fills the pixel rectangle [x0, x1) x [y0, y1).
func (p *painter) fillRect(x0, y0, x1, y1 int, c RGBA) {
	r := image.Rect(x0, y0, x1, y1)
	draw.Draw(p.img, r, image.NewUniform(c.Color()), image.Point{}, draw.Over)
}

func (p *painter) hline(x0, x1, y int, c RGBA) { p.fillRect(x0, y, x1+1, y+1, c) }

func (p *painter) vline(x, y0, y1 int, c RGBA) { p.fillRect(x, y0, x+1, y1+1, c) }

// polyline strokes pts with the given width. Each segment is rasterized as
// a quad; all quads share one winding so overlaps at joints do not cancel.
func (p *painter) polyline(pts []point, width float64, c RGBA) {
	b := p.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	hw := width / 2
	if len(pts) == 1 {
		q := pts[0]
		rect(z, q.x-hw, q.y-hw, q.x+hw, q.y+hw)
	}
	for i := 1; i < len(pts); i++ {
		a, e := pts[i-1], pts[i]
		dx, dy := e.x-a.x, e.y-a.y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		z.MoveTo(float32(a.x+nx), float32(a.y+ny))
		z.LineTo(float32(e.x+nx), float32(e.y+ny))
		z.LineTo(float32(e.x-nx), float32(e.y-ny))
		z.LineTo(float32(a.x-nx), float32(a.y-ny))
		z.ClosePath()
		if i < len(pts)-1 {
			rect(z, e.x-hw, e.y-hw, e.x+hw, e.y+hw)
		}
	}
	z.Draw(p.img, b, image.NewUniform(c.Color()), image.Point{})
}

// rect adds a rectangle wound the same way as the stroke quads.
func rect(z *vector.Rasterizer, x0, y0, x1, y1 float64) {
	z.MoveTo(float32(x0), float32(y1))
	z.LineTo(float32(x1), float32(y1))
	z.LineTo(float32(x1), float32(y0))
	z.LineTo(float32(x0), float32(y0))
	z.ClosePath()
}

// polygon fills the closed polygon through pts.
func (p *painter) polygon(pts []point, c RGBA) {
	if len(pts) < 3 {
		return
	}
	b := p.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, q := range pts[1:] {
		z.LineTo(float32(q.x), float32(q.y))
	}
	z.ClosePath()
	z.Draw(p.img, b, image.NewUniform(c.Color()), image.Point{})
}

// textWidth returns the advance of s in pixels.
func (p *painter) textWidth(s string) float64 {
	return fixedToFloat64(font.MeasureString(p.face, s))
}

// lineHeight returns the font's line spacing in pixels.
func (p *painter) lineHeight() float64 {
	return fixedToFloat64(p.face.Metrics().Height)
}

// capHeight returns the height of capital letters in pixels.
func (p *painter) capHeight() float64 {
	m := p.face.Metrics()
	if m.CapHeight > 0 {
		return fixedToFloat64(m.CapHeight)
	}
	return fixedToFloat64(m.Ascent) * 0.7
}

// text draws s with its baseline at y.
func (p *painter) text(s string, x, y float64, a align, c RGBA) {
	if s == "" {
		return
	}
	switch a {
	case alignCenter:
		x -= p.textWidth(s) / 2
	case alignRight:
		x -= p.textWidth(s)
	}
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c.Color()),
		Face: p.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

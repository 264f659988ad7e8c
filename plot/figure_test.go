package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/svt"
	"github.com/gogpu/svt/si"
)

func curve(t *testing.T, xs, ys []float64, x, y svt.Measure) svt.Curve {
	t.Helper()
	c, err := svt.NewCurve(svt.NewArray(xs, x), svt.NewArray(ys, y))
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}
	return c
}

func near(a, b RGBA) bool {
	const tol = 0.03
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol && math.Abs(a.B-b.B) < tol
}

func countNear(pm *Pixmap, c RGBA) int {
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if near(pm.GetPixel(x, y), c) {
				n++
			}
		}
	}
	return n
}

// -------------------------------------------------------------------
// Ticks
// -------------------------------------------------------------------

func TestNiceScale(t *testing.T) {
	tests := []struct {
		lo, hi float64
		n      int
		ticks  []float64
		digits int
	}{
		{0, 4, 6, []float64{0, 1, 2, 3, 4}, 0},
		{0, 1, 6, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, 1},
		{-3, 7, 6, []float64{-4, -2, 0, 2, 4, 6, 8}, 0},
		{5, 5, 3, []float64{0, 5, 10}, 0},
		{10, 20, 6, []float64{10, 12, 14, 16, 18, 20}, 0},
	}
	for _, tt := range tests {
		s := niceScale(tt.lo, tt.hi, tt.n)
		if len(s.ticks) != len(tt.ticks) {
			t.Errorf("niceScale(%v, %v).ticks = %v, want %v", tt.lo, tt.hi, s.ticks, tt.ticks)
			continue
		}
		for i := range s.ticks {
			if math.Abs(s.ticks[i]-tt.ticks[i]) > 1e-9 {
				t.Errorf("niceScale(%v, %v).ticks = %v, want %v", tt.lo, tt.hi, s.ticks, tt.ticks)
				break
			}
		}
		if s.digits != tt.digits {
			t.Errorf("niceScale(%v, %v).digits = %d, want %d", tt.lo, tt.hi, s.digits, tt.digits)
		}
		if s.lo > tt.lo || s.hi < tt.hi {
			t.Errorf("niceScale(%v, %v) = [%v, %v] does not cover the input", tt.lo, tt.hi, s.lo, s.hi)
		}
	}
}

func TestScale_Label(t *testing.T) {
	s := niceScale(0, 3, 7)
	en := message.NewPrinter(language.English)
	de := message.NewPrinter(language.German)
	if got := s.label(en, 1.5); got != "1.5" {
		t.Errorf("English label = %q, want 1.5", got)
	}
	if got := s.label(de, 1.5); got != "1,5" {
		t.Errorf("German label = %q, want 1,5", got)
	}
	if got := s.label(en, 0); got != "0.0" {
		t.Errorf("zero label = %q, want 0.0", got)
	}
	big := niceScale(0, 5000, 6)
	if got := big.label(en, 2000); got != "2,000" {
		t.Errorf("grouped label = %q, want 2,000", got)
	}
}

func TestAxisTitle(t *testing.T) {
	tests := []struct {
		label string
		m     svt.Measure
		want  string
	}{
		{"time", si.Second(), "time [s]"},
		{"", si.Celsius(), "[°C]"},
		{"ratio", svt.Dimensionless(), "ratio"},
		{"none", nil, "none"},
	}
	for _, tt := range tests {
		if got := axisTitle(tt.label, tt.m); got != tt.want {
			t.Errorf("axisTitle(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

// -------------------------------------------------------------------
// Figure
// -------------------------------------------------------------------

func TestFigure_AddCurveMatchesUnits(t *testing.T) {
	mm, err := si.Meter().WithPrefix("m")
	if err != nil {
		t.Fatal(err)
	}
	fig := NewFigure(si.Second(), mm)
	c := curve(t, []float64{0, 1}, []float64{0.5, 2}, si.Second(), si.Meter())
	if err := fig.AddCurve("a", c); err != nil {
		t.Fatal(err)
	}
	got := fig.series[0].curve.Y()
	if got.Unit().Label() != "mm" {
		t.Errorf("stored y unit = %q, want mm", got.Unit().Label())
	}
	if ys := got.Floats(); math.Abs(ys[0]-500) > 1e-9 || math.Abs(ys[1]-2000) > 1e-9 {
		t.Errorf("stored y = %v, want [500 2000]", ys)
	}
}

func TestFigure_AddCurveWarnsOnGaps(t *testing.T) {
	orig := svt.Logger()
	t.Cleanup(func() { svt.SetLogger(orig) })
	var buf bytes.Buffer
	svt.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	fig := NewFigure(si.Second(), si.Meter())
	c := curve(t, []float64{0, 1, 2}, []float64{0, math.NaN(), 2}, si.Second(), si.Meter())
	if err := fig.AddCurve("gappy", c); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "skipped=1") {
		t.Errorf("expected a warning for the NaN sample, got: %s", out)
	}
}

func TestFigure_AddCurveErrors(t *testing.T) {
	fig := NewFigure(si.Second(), si.Meter())

	wrongY := curve(t, []float64{0, 1}, []float64{0, 1}, si.Second(), si.Kelvin())
	if err := fig.AddCurve("wrong", wrongY); !errors.Is(err, svt.ErrIncompatibleUnits) {
		t.Errorf("incompatible error = %v, want ErrIncompatibleUnits", err)
	}

	m := svt.NewArray([]float64{0, 1}, si.Meter())
	c3, err := svt.NewCurve(svt.NewArray([]float64{0, 1}, si.Second()), m, m)
	if err != nil {
		t.Fatal(err)
	}
	if err := fig.AddCurve("3d", c3); !errors.Is(err, svt.ErrInvalidDimensionality) {
		t.Errorf("3-D error = %v, want ErrInvalidDimensionality", err)
	}
	if fig.Len() != 0 {
		t.Errorf("failed adds left %d series", fig.Len())
	}

	if err := fig.AddEnvelope("one", wrongY); !errors.Is(err, svt.ErrInvalidDimensionality) {
		t.Errorf("single-curve envelope error = %v, want ErrInvalidDimensionality", err)
	}
}

func TestFigure_MiscAxis(t *testing.T) {
	fig := NewFigure(si.Second(), si.Celsius())
	c := curve(t, []float64{0, 1}, []float64{273.15, 373.15}, si.Second(), si.Kelvin())
	if err := fig.AddCurve("t", c); err != nil {
		t.Fatal(err)
	}
	ys := fig.series[0].curve.Y().Floats()
	if math.Abs(ys[0]) > 1e-9 || math.Abs(ys[1]-100) > 1e-9 {
		t.Errorf("y in °C = %v, want [0 100]", ys)
	}
}

func TestFigure_ColorsBeyondPalette(t *testing.T) {
	red := RGB(1, 0, 0)
	fig := NewFigure(si.Second(), si.Meter(), WithPalette(red))
	c := curve(t, []float64{0, 1}, []float64{0, 1}, si.Second(), si.Meter())
	for i := 0; i < 3; i++ {
		if err := fig.AddCurve(fmt.Sprint(i), c); err != nil {
			t.Fatal(err)
		}
	}
	if fig.series[0].color != red {
		t.Errorf("first series color = %v, want palette entry", fig.series[0].color)
	}
	if near(fig.series[1].color, red) || near(fig.series[1].color, fig.series[2].color) {
		t.Errorf("series beyond the palette reuse colors: %v, %v", fig.series[1].color, fig.series[2].color)
	}
}

func TestFigure_RenderErrors(t *testing.T) {
	if _, err := NewFigure(si.Second(), si.Meter()).Render(); !errors.Is(err, ErrEmptyFigure) {
		t.Errorf("empty figure error = %v, want ErrEmptyFigure", err)
	}

	c := curve(t, []float64{0, 1}, []float64{0, 1}, si.Second(), si.Meter())
	tiny := NewFigure(si.Second(), si.Meter(), WithSize(30, 30))
	if err := tiny.AddCurve("c", c); err != nil {
		t.Fatal(err)
	}
	if _, err := tiny.Render(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("tiny figure error = %v, want ErrInvalidSize", err)
	}

	zero := NewFigure(si.Second(), si.Meter(), WithSize(0, 100))
	if err := zero.AddCurve("c", c); err != nil {
		t.Fatal(err)
	}
	if _, err := zero.Render(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero-width error = %v, want ErrInvalidSize", err)
	}

	nan := curve(t, []float64{math.NaN()}, []float64{1}, si.Second(), si.Meter())
	empty := NewFigure(si.Second(), si.Meter())
	if err := empty.AddCurve("nan", nan); err != nil {
		t.Fatal(err)
	}
	if _, err := empty.Render(); !errors.Is(err, ErrNoFinitePoints) {
		t.Errorf("all-NaN error = %v, want ErrNoFinitePoints", err)
	}
}

func TestFigure_Render(t *testing.T) {
	red, blue := RGB(1, 0, 0), RGB(0, 0, 1)
	fig := NewFigure(si.Second(), si.Meter(),
		WithSize(320, 240),
		WithTitle("test"),
		WithAxisLabels("time", "position"),
		WithPalette(red, blue),
		WithLineWidth(3),
	)
	xs := []float64{0, 1, 2, 3, 4}
	if err := fig.AddCurve("up", curve(t, xs, []float64{0, 1, 2, 3, 4}, si.Second(), si.Meter())); err != nil {
		t.Fatal(err)
	}

	pm, err := fig.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if pm.Width() != 320 || pm.Height() != 240 {
		t.Errorf("size = %dx%d, want 320x240", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(0, pm.Height()-1); got != White {
		t.Errorf("corner pixel = %+v, want background", got)
	}
	if n := countNear(pm, red); n < 50 {
		t.Errorf("found %d pixels of the curve color, want a drawn line", n)
	}
	if n := countNear(pm, blue); n != 0 {
		t.Errorf("found %d pixels of the unused palette color", n)
	}
	if n := countNear(pm, Black); n < 100 {
		t.Errorf("found %d foreground pixels, want axes and labels", n)
	}
}

func TestFigure_RenderEnvelope(t *testing.T) {
	green := RGB(0, 0.6, 0)
	fig := NewFigure(si.Second(), si.Meter(), WithSize(320, 240), WithPalette(green))
	xs := []float64{0, 1, 2, 3, 4, 5}
	up := curve(t, xs, []float64{0, 1, 2, 3, 4, 5}, si.Second(), si.Meter())
	down := curve(t, xs, []float64{5, 4, 3, 2, 1, 0}, si.Second(), si.Meter())
	if err := fig.AddEnvelope("band", up, down); err != nil {
		t.Fatal(err)
	}
	s := fig.series[0]
	if !s.band || s.upper.Len() != 6 {
		t.Fatalf("envelope series = %+v", s)
	}

	pm, err := fig.Render()
	if err != nil {
		t.Fatal(err)
	}
	fill := green.WithAlpha(0.3)
	blended := White.Lerp(RGB(fill.R, fill.G, fill.B), fill.A)
	if n := countNear(pm, blended); n < 500 {
		t.Errorf("found %d band pixels, want a filled region", n)
	}
}

func TestFigure_WriteAndSavePNG(t *testing.T) {
	fig := NewFigure(si.Second(), si.Meter(), WithSize(200, 150), WithLanguage(language.German))
	if err := fig.AddCurve("", curve(t, []float64{0, 0.5, 1}, []float64{1, 3, 2}, si.Second(), si.Meter())); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := fig.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Errorf("decoded bounds = %v", b)
	}

	path := filepath.Join(t.TempDir(), "fig.png")
	if err := fig.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("saved file: %v, %v", info, err)
	}
}

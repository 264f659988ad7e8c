package plot

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"
)

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(White)
	pm.SetPixel(3, 7, RGB(1, 0, 0))

	if got := pm.GetPixel(3, 7); got != RGB(1, 0, 0) {
		t.Errorf("GetPixel(3, 7) = %+v, want red", got)
	}
	if got := pm.GetPixel(0, 0); got != White {
		t.Errorf("GetPixel(0, 0) = %+v, want white", got)
	}
	i := (7*10 + 3) * 4
	if d := pm.Data(); d[i] != 255 || d[i+1] != 0 || d[i+3] != 255 {
		t.Errorf("raw data = %v", d[i:i+4])
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)
	original := append([]uint8(nil), pm.Data()...)

	for _, c := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		pm.SetPixel(c.x, c.y, White)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want transparent", c.x, c.y, got)
		}
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmap_CanvasSharesStorage(t *testing.T) {
	pm := NewPixmap(2, 2)
	img := pm.canvas()
	img.Pix[0] = 200
	if pm.Data()[0] != 200 {
		t.Error("canvas does not share the pixmap's storage")
	}
	cp := pm.ToImage()
	cp.Pix[0] = 1
	if pm.Data()[0] != 200 {
		t.Error("ToImage does not copy")
	}
}

func TestPixmap_PNG(t *testing.T) {
	pm := NewPixmap(5, 3)
	pm.Clear(RGB(0, 0, 1))

	var buf bytes.Buffer
	if err := pm.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatal(err)
	}
}

// -------------------------------------------------------------------
// Colors
// -------------------------------------------------------------------

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", White},
		{"000", Black},
		{"#ff0000", RGB(1, 0, 0)},
		{"00ff0080", RGBA{0, 1, 0, 128.0 / 255}},
		{"f008", RGBA{1, 0, 0, 136.0 / 255}},
		{"zzz", Black},
		{"#12345", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h    float64
		want RGBA
	}{
		{0, RGB(1, 0, 0)},
		{120, RGB(0, 1, 0)},
		{240, RGB(0, 0, 1)},
		{-120, RGB(0, 0, 1)},
	}
	for _, tt := range tests {
		got := HSL(tt.h, 1, 0.5)
		if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
			t.Errorf("HSL(%v, 1, 0.5) = %+v, want %+v", tt.h, got, tt.want)
		}
	}
}

func TestRGBA_ColorInterface(t *testing.T) {
	r, g, b, a := RGBA{1, 0, 0, 0.5}.RGBA()
	if a < 32600 || a > 32900 || r != a || g != 0 || b != 0 {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
	if got := FromColor(RGB(0, 1, 0)); got != RGB(0, 1, 0) {
		t.Errorf("FromColor round trip = %+v", got)
	}
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.A != 1 {
		t.Errorf("Lerp = %+v", mid)
	}
}

package raster

import (
	"bytes"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/dotfx"
)

func painted(c dotfx.RGBA) bool { return c.A > 0.9 }

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(20, 10, WithBackground(dotfx.White))
	if c.Width() != 20 || c.Height() != 10 {
		t.Fatalf("size = %dx%d, want 20x10", c.Width(), c.Height())
	}
	if got := c.Pixel(5, 5); got != dotfx.White {
		t.Errorf("background = %v, want white", got)
	}
	if got := c.Pixel(-1, 0); got != dotfx.Transparent {
		t.Errorf("Pixel outside = %v, want transparent", got)
	}

	empty := NewCanvas(-5, 3)
	if empty.Width() != 0 {
		t.Errorf("Width() = %d for negative size, want 0", empty.Width())
	}
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(20, 20)
	c.SetFillStyle(dotfx.Solid(dotfx.Red))
	c.BeginPath()
	c.MoveTo(5, 5)
	c.LineTo(15, 5)
	c.LineTo(15, 15)
	c.LineTo(5, 15)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	in := c.Pixel(10, 10)
	if !painted(in) || in.R < 0.99 || in.B > 0.01 {
		t.Errorf("inside = %v, want red", in)
	}
	if out := c.Pixel(2, 2); out.A != 0 {
		t.Errorf("outside = %v, want untouched", out)
	}
}

func TestFillArc(t *testing.T) {
	c := NewCanvas(20, 20)
	c.BeginPath()
	c.Arc(10, 10, 6, 0, 2*math.Pi)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	if !painted(c.Pixel(10, 10)) {
		t.Error("circle center not painted")
	}
	if c.Pixel(1, 1).A != 0 {
		t.Error("corner painted by circle fill")
	}
}

func TestStrokeLine(t *testing.T) {
	c := NewCanvas(20, 20)
	c.SetLineWidth(4)
	c.BeginPath()
	c.MoveTo(2, 10)
	c.LineTo(18, 10)
	if err := c.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}

	for _, y := range []int{8, 9, 10, 11} {
		if !painted(c.Pixel(10, y)) {
			t.Errorf("pixel (10,%d) not painted", y)
		}
	}
	if c.Pixel(10, 13).A != 0 {
		t.Error("pixel below the stroke painted")
	}
	if c.Pixel(0, 10).A != 0 {
		t.Error("butt cap extended past the start point")
	}
}

func TestStrokeSquareCap(t *testing.T) {
	c := NewCanvas(20, 20)
	c.SetLineWidth(4)
	c.SetLineCap(dotfx.LineCapSquare)
	c.BeginPath()
	c.MoveTo(4, 10)
	c.LineTo(16, 10)
	_ = c.Stroke()
	if !painted(c.Pixel(2, 10)) {
		t.Error("square cap missing before the start point")
	}
}

func TestStrokeDashed(t *testing.T) {
	c := NewCanvas(20, 20)
	c.SetLineWidth(2)
	c.SetLineDash([]float64{4, 4})
	c.BeginPath()
	c.MoveTo(0, 10)
	c.LineTo(20, 10)
	_ = c.Stroke()

	if !painted(c.Pixel(2, 10)) {
		t.Error("first dash not painted")
	}
	if c.Pixel(5, 10).A != 0 {
		t.Error("gap painted")
	}
	if !painted(c.Pixel(9, 10)) {
		t.Error("second dash not painted")
	}
}

func TestStrokeGradient(t *testing.T) {
	c := NewCanvas(40, 10)
	c.SetStrokeStyle(&dotfx.LinearGradientBrush{
		Start: dotfx.Pt(0, 0),
		End:   dotfx.Pt(40, 0),
		Stops: []dotfx.ColorStop{dotfx.Stop(0, dotfx.Red), dotfx.Stop(1, dotfx.Blue)},
	})
	c.SetLineWidth(6)
	c.BeginPath()
	c.MoveTo(0, 5)
	c.LineTo(40, 5)
	_ = c.Stroke()

	left, right := c.Pixel(2, 5), c.Pixel(37, 5)
	if left.R <= left.B {
		t.Errorf("left = %v, want mostly red", left)
	}
	if right.B <= right.R {
		t.Errorf("right = %v, want mostly blue", right)
	}
}

func TestIgnoredAttributes(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetLineWidth(3)
	c.SetLineWidth(0)
	c.SetLineWidth(-2)
	if c.LineWidth() != 3 {
		t.Errorf("LineWidth() = %v, want 3", c.LineWidth())
	}

	c.SetLineDash([]float64{5})
	if !slices.Equal(c.LineDash(), []float64{5, 5}) {
		t.Errorf("LineDash() = %v, want [5 5]", c.LineDash())
	}
	c.SetLineDash(nil)
	if len(c.LineDash()) != 0 {
		t.Errorf("LineDash() = %v, want solid", c.LineDash())
	}

	c.SetStrokeStyle(nil)
	c.BeginPath()
	c.MoveTo(0, 5)
	c.LineTo(10, 5)
	_ = c.Stroke()
	if !painted(c.Pixel(5, 5)) {
		t.Error("nil stroke style replaced the default brush")
	}
}

func TestEmptyPath(t *testing.T) {
	c := NewCanvas(10, 10)
	c.BeginPath()
	if err := c.Stroke(); err != nil {
		t.Errorf("Stroke() on empty path = %v", err)
	}
	if err := c.Fill(); err != nil {
		t.Errorf("Fill() on empty path = %v", err)
	}
}

func TestReset(t *testing.T) {
	c := NewCanvas(10, 10, WithBackground(dotfx.Blue))
	c.Clear(dotfx.Red)
	c.MoveTo(0, 0)
	c.Reset()
	if got := c.Pixel(3, 3); got != dotfx.Blue {
		t.Errorf("after Reset pixel = %v, want background", got)
	}
	if err := c.Fill(); err != nil || c.Pixel(0, 0) != dotfx.Blue {
		t.Error("Reset kept the path")
	}
}

func TestEncodePNG(t *testing.T) {
	c := NewCanvas(16, 8, WithBackground(dotfx.White))
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("decoded size = %v, want 16x8", b)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := NewCanvas(4, 4)
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}

	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}

func TestPaintDebugLogs(t *testing.T) {
	var buf bytes.Buffer
	dotfx.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { dotfx.SetLogger(nil) })

	c := NewCanvas(10, 10)
	c.BeginPath()
	c.MoveTo(1, 1)
	c.LineTo(8, 8)
	_ = c.Stroke()
	_ = c.Fill()

	out := buf.String()
	if !strings.Contains(out, `msg="raster: stroke" polylines=1`) {
		t.Errorf("log = %q, want a stroke record", out)
	}
	if !strings.Contains(out, `msg="raster: fill" ops=2`) {
		t.Errorf("log = %q, want a fill record", out)
	}
}

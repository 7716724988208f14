package ggsurface

import (
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ring"
)

// near reports whether the pixel at (x, y) is within tol (8-bit) of want.
func near(t *testing.T, dc *gg.Context, x, y int, want gg.RGBA, tol uint8) bool {
	t.Helper()
	got := color.NRGBAModel.Convert(dc.Image().At(x, y)).(color.NRGBA)
	w := color.NRGBAModel.Convert(want.Color()).(color.NRGBA)
	diff := func(a, b uint8) uint8 {
		if a > b {
			return a - b
		}
		return b - a
	}
	ok := diff(got.R, w.R) <= tol && diff(got.G, w.G) <= tol && diff(got.B, w.B) <= tol
	if !ok {
		t.Logf("pixel (%d, %d) = %v, want %v", x, y, got, w)
	}
	return ok
}

func drawDefaultRing(t *testing.T, mutate func(*ring.View)) *gg.Context {
	t.Helper()
	dc := gg.NewContext(200, 200)
	t.Cleanup(func() { _ = dc.Close() })
	dc.ClearWithColor(gg.White)

	surf, err := NewRaster(dc)
	if err != nil {
		t.Fatalf("NewRaster() = %v", err)
	}

	v := ring.NewView()
	v.Layout(200, 200, ring.Insets{})
	if mutate != nil {
		mutate(v)
	}
	v.Draw(surf)
	return dc
}

func TestRaster_DefaultRing(t *testing.T) {
	dc := drawDefaultRing(t, nil)
	cfg := ring.DefaultConfig()

	// Radius 95, stroke 20: the ring covers 85..105 from the center.
	// The arc runs clockwise from 12 o'clock to 144 degrees.
	if !near(t, dc, 195, 100, cfg.ProgressColor, 12) {
		t.Error("3 o'clock should be on the progress arc")
	}
	if !near(t, dc, 100, 195, cfg.ProgressColor, 12) {
		t.Error("6 o'clock should be on the progress arc")
	}
	if !near(t, dc, 5, 100, cfg.BackgroundColor, 12) {
		t.Error("9 o'clock should show the track")
	}
	if !near(t, dc, 100, 60, gg.White, 0) {
		t.Error("inside of the ring above the label should be untouched")
	}
	if !near(t, dc, 2, 2, gg.White, 0) {
		t.Error("corner should be untouched")
	}
}

func TestRaster_LabelDrawn(t *testing.T) {
	countDark := func(dc *gg.Context) int {
		n := 0
		for y := 80; y < 120; y++ {
			for x := 70; x < 130; x++ {
				r, _, _, _ := dc.Image().At(x, y).RGBA()
				if r < 0x8000 {
					n++
				}
			}
		}
		return n
	}

	withLabel := countDark(drawDefaultRing(t, nil))
	withoutLabel := countDark(drawDefaultRing(t, func(v *ring.View) { v.SetLabelVisible(false) }))

	if withLabel == 0 {
		t.Error("no label pixels found around the center")
	}
	if withoutLabel != 0 {
		t.Errorf("hidden label still left %d dark pixels", withoutLabel)
	}
}

func TestRaster_DegenerateInputDoesNotPanic(t *testing.T) {
	dc := gg.NewContext(20, 20)
	t.Cleanup(func() { _ = dc.Close() })
	surf, err := NewRaster(dc)
	if err != nil {
		t.Fatalf("NewRaster() = %v", err)
	}

	v := ring.NewView()
	v.SetMax(0)
	v.Layout(20, 20, ring.Uniform(30))
	v.Draw(surf)

	surf.StrokeArc(gg.Rect{Max: gg.Pt(10, 10)}, 0, 900, ring.Stroke{Width: 2, Color: gg.Red})
	surf.StrokeArc(gg.Rect{Max: gg.Pt(10, 10)}, 0, -45, ring.Stroke{Width: 2, Color: gg.Red})
	surf.DrawText("x", gg.Pt(0, 0), 0, gg.Red)
}

func TestNewRaster_WithFonts(t *testing.T) {
	fonts, err := DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts() = %v", err)
	}
	t.Cleanup(func() { _ = fonts.Close() })

	dc := gg.NewContext(10, 10)
	t.Cleanup(func() { _ = dc.Close() })
	surf, err := NewRaster(dc, WithFonts(fonts))
	if err != nil {
		t.Fatalf("NewRaster() = %v", err)
	}
	if surf.fonts != fonts {
		t.Error("WithFonts was ignored")
	}
	if surf.Context() != dc {
		t.Error("Context() did not return the wrapped context")
	}
}

func TestRaster_NegativeProgressCounterClockwise(t *testing.T) {
	dc := drawDefaultRing(t, func(v *ring.View) { v.SetProgress(-25) })
	cfg := ring.DefaultConfig()

	// Sweep -90 from 12 o'clock runs back to 9 o'clock.
	if !near(t, dc, 33, 33, cfg.ProgressColor, 12) {
		t.Error("10:30 should be on the progress arc")
	}
	if !near(t, dc, 167, 33, cfg.BackgroundColor, 12) {
		t.Error("1:30 should show the track")
	}
	if !near(t, dc, 100, 195, cfg.BackgroundColor, 12) {
		t.Error("6 o'clock should show the track")
	}
}

func TestRaster_ProgressFarAboveMax(t *testing.T) {
	// 1e6 out of 1 sweeps 3.6e8 degrees and must draw as one full turn.
	start := time.Now()
	dc := drawDefaultRing(t, func(v *ring.View) {
		v.SetMax(1)
		v.SetProgress(1_000_000)
		v.SetLabelVisible(false)
	})
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("drawing took %v", elapsed)
	}

	cfg := ring.DefaultConfig()
	for _, p := range []struct{ x, y int }{{167, 33}, {167, 167}, {33, 167}, {33, 33}} {
		if !near(t, dc, p.x, p.y, cfg.ProgressColor, 12) {
			t.Errorf("(%d, %d) should be on the full progress ring", p.x, p.y)
		}
	}
}

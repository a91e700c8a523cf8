package geometry

import (
	"math"
	"testing"
)

func defaultParams() Params {
	return Params{
		Stage:        Size{W: 750, H: 500},
		AlbumMargin:  0.25,
		BottomMargin: 0.02,
		PhotoMargin:  0.12,
	}
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		n          int
		ratio      float64
		cols, rows int
	}{
		{1, 1.0, 1, 1},
		{2, 1.0, 1, 2},
		{3, 1.0, 2, 2},
		{5, 1.0, 2, 3},
		{7, 1.0, 3, 3},
		{10, 1.0, 3, 4},
		{12, 1.0, 3, 4},
		{1, 2.0 / 3.0 * 100 / 2000, 1, 6},
		{2, 2.0 / 3.0 * 100 / 2000, 1, 9},
		{1, 30, 5, 1},
	}

	for _, tt := range tests {
		cols, rows := GridSize(tt.n, tt.ratio)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("GridSize(%d, %.1f) = (%d, %d), want (%d, %d)", tt.n, tt.ratio, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestGridSizeHoldsEveryPhoto(t *testing.T) {
	for _, ratio := range []float64{0.01, 0.05, 0.5, 0.75, 1.0, 4.0 / 3.0, 2.0, 20, 100} {
		for n := 1; n <= 300; n++ {
			cols, rows := GridSize(n, ratio)
			if cols*rows < n {
				t.Fatalf("GridSize(%d, %.2f) = (%d, %d) holds only %d", n, ratio, cols, rows, cols*rows)
			}
		}
	}
}

func TestNewLayoutDefaultStage(t *testing.T) {
	l := NewLayout(10, defaultParams())

	if l.Cols != 3 || l.Rows != 4 {
		t.Fatalf("grid = %dx%d, want 3x4", l.Cols, l.Rows)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"canvas width", l.Canvas.W, 562.5},
		{"canvas height", l.Canvas.H, 365},
		{"unit width", l.Unit.W, 187.5},
		{"unit height", l.Unit.H, 91.25},
		{"origin x", l.Origin.X, 93.75},
		{"origin y", l.Origin.Y, 57.5},
		{"bottom margin", l.BottomMargin, 10},
		{"zoom scale", l.ZoomScale, 2.0},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestZoomScaleAtLeastOne(t *testing.T) {
	for n := 1; n <= 100; n++ {
		l := NewLayout(n, defaultParams())
		if l.ZoomScale < 1 {
			t.Errorf("n=%d: zoom scale %.3f < 1", n, l.ZoomScale)
		}
	}
}

func TestCell(t *testing.T) {
	l := NewLayout(10, defaultParams())

	p := l.Cell(4)
	if p.X != 281.25 || p.Y != 148.75 {
		t.Errorf("Cell(4) = %+v, want {281.25 148.75}", p)
	}
	if l.Cell(0) != l.Origin {
		t.Errorf("Cell(0) = %+v, want origin %+v", l.Cell(0), l.Origin)
	}
}

func TestPhotoScale(t *testing.T) {
	l := NewLayout(10, defaultParams())

	got := l.PhotoScale(Size{W: 600, H: 400})
	want := 91.25 / 400 * 0.88
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("PhotoScale = %v, want %v", got, want)
	}

	// Fit never exceeds the cell minus margin on either axis.
	for _, s := range []Size{{600, 400}, {400, 600}, {1000, 10}, {10, 1000}} {
		scale := l.PhotoScale(s)
		if s.W*scale > l.Unit.W*(1-l.PhotoMargin)+1e-9 || s.H*scale > l.Unit.H*(1-l.PhotoMargin)+1e-9 {
			t.Errorf("photo %+v scaled by %v overflows cell %+v", s, scale, l.Unit)
		}
	}
}

func TestZoomCurve(t *testing.T) {
	c := ZoomCurve{Frames: 10, Target: 2.0}
	tests := []struct {
		step  int
		scale float64
	}{
		{0, 1.0},
		{1, 1.5},
		{2, 1.75},
		{3, 1.875},
		{10, 1.9990234375},
	}
	for _, tt := range tests {
		if got := c.Scale(tt.step); math.Abs(got-tt.scale) > 1e-12 {
			t.Errorf("Scale(%d) = %v, want %v", tt.step, got, tt.scale)
		}
	}

	off := c.Offset(Size{W: 600, H: 400}, 1)
	if off.X != -150 || off.Y != -100 {
		t.Errorf("Offset(1) = %+v, want {-150 -100}", off)
	}
	if o := c.Offset(Size{W: 600, H: 400}, 0); o.X != 0 || o.Y != 0 {
		t.Errorf("Offset(0) = %+v, want zero", o)
	}
}

func TestZoomCurveMonotonic(t *testing.T) {
	c := ZoomCurve{Frames: 10, Target: 3.5}
	size := Size{W: 320, H: 240}

	prev := c.Sample(size, 0)
	for i := 1; i <= c.Frames; i++ {
		s := c.Sample(size, i)
		if s.Scale <= prev.Scale {
			t.Errorf("step %d: scale %v not above %v", i, s.Scale, prev.Scale)
		}
		if s.Scale >= c.Target {
			t.Errorf("step %d: scale %v reached target %v", i, s.Scale, c.Target)
		}
		if s.Offset.X >= prev.Offset.X || s.Offset.Y >= prev.Offset.Y {
			t.Errorf("step %d: offset %+v not below %+v", i, s.Offset, prev.Offset)
		}
		t.Logf("step %d: scale=%.4f offset=(%.2f, %.2f) alpha=%.2f", i, s.Scale, s.Offset.X, s.Offset.Y, s.Alpha)
		prev = s
	}
	if prev.Alpha != 1 {
		t.Errorf("final alpha = %v, want 1", prev.Alpha)
	}
}

func TestCaptionPlacement(t *testing.T) {
	photo := Size{W: 600, H: 400}
	cs := CaptionScale(photo, 400, 2.0, 0.75)
	if cs != 2.25 {
		t.Fatalf("CaptionScale = %v, want 2.25", cs)
	}

	p := CaptionPoint(Point{X: -300, Y: -200}, photo, 2.0, Size{W: 400, H: 100}, cs)
	if p.X != -300+1200-900 || p.Y != 600 {
		t.Errorf("CaptionPoint = %+v", p)
	}
}

func TestCaptionScaleOfEmptyCaption(t *testing.T) {
	photo := Size{W: 600, H: 400}
	cs := CaptionScale(photo, 0, 2.0, 0.75)
	if cs != 0 {
		t.Fatalf("CaptionScale(width 0) = %v, want 0", cs)
	}
	p := CaptionPoint(Point{X: -300, Y: -200}, photo, 2.0, Size{W: 0, H: 100}, cs)
	if math.IsInf(p.X, 0) || math.IsNaN(p.X) || p.X != 900 {
		t.Errorf("CaptionPoint = %+v, want x 900", p)
	}
}

func TestProgressBar(t *testing.T) {
	stage := Size{W: 750, H: 500}
	bar, at := ProgressBar(stage, 0.25)

	if math.Abs(bar.W-517.5) > 1e-9 || math.Abs(bar.H-15) > 1e-9 {
		t.Errorf("bar = %+v", bar)
	}
	if math.Abs(at.X-116.25) > 1e-9 || math.Abs(at.Y-23.75) > 1e-9 {
		t.Errorf("bar point = %+v", at)
	}
	if h := ProgressTextHeight(stage); math.Abs(h-500.0/28) > 1e-12 {
		t.Errorf("text height = %v", h)
	}
}

package geometry

import "math"

// CameraAspect is the width/height ratio of a typical photo, used to bias
// the grid toward landscape cells.
const CameraAspect = 2.0 / 3.0

// Size is a width/height pair in stage pixels.
type Size struct {
	W float64
	H float64
}

// Point is a position in stage pixels.
type Point struct {
	X float64
	Y float64
}

// Params are the inputs of a layout besides the photo count.
type Params struct {
	Stage        Size
	AlbumMargin  float64 // share of the stage width left around the canvas
	BottomMargin float64 // share of the stage height reserved under the canvas
	PhotoMargin  float64 // share of a cell left around its photo
}

// Layout is the grid arrangement of an album. It is computed once per
// album and never changes afterwards.
type Layout struct {
	Cols, Rows   int
	Count        int
	Stage        Size
	Canvas       Size
	Unit         Size
	Origin       Point
	BottomMargin float64
	ZoomScale    float64
	PhotoMargin  float64
}

// AspectRatio biases the grid by the stage shape: 1.0 for a 3:2 stage.
func AspectRatio(stage Size) float64 {
	return CameraAspect * stage.W / stage.H
}

// GridSize returns the smallest near-square grid holding n cells for the
// given aspect ratio. Rows grow first, then columns, each at most once.
func GridSize(n int, ratio float64) (cols, rows int) {
	cols = int(math.Round(math.Sqrt(ratio * float64(n))))
	rows = int(math.Round(math.Sqrt(float64(n) / ratio)))
	// Either dimension may round to zero for extreme ratios; the
	// corrections below still cover n.
	if cols*rows < n {
		rows++
	}
	if cols*rows < n {
		cols++
	}
	return cols, rows
}

// NewLayout assumes n >= 1.
func NewLayout(n int, p Params) *Layout {
	ratio := AspectRatio(p.Stage)
	cols, rows := GridSize(n, ratio)

	bottom := p.Stage.H * p.BottomMargin
	canvas := Size{
		W: p.Stage.W * (1 - p.AlbumMargin),
		H: p.Stage.H*(1-p.AlbumMargin*ratio) - bottom,
	}
	unit := Size{W: canvas.W / float64(cols), H: canvas.H / float64(rows)}

	return &Layout{
		Cols:   cols,
		Rows:   rows,
		Count:  n,
		Stage:  p.Stage,
		Canvas: canvas,
		Unit:   unit,
		Origin: Point{
			X: (p.Stage.W - canvas.W) / 2,
			Y: (p.Stage.H-canvas.H)/2 - bottom,
		},
		BottomMargin: bottom,
		ZoomScale:    (p.Stage.W - canvas.W + unit.W) / unit.W,
		PhotoMargin:  p.PhotoMargin,
	}
}

// Cell returns the top-left corner of the cell holding photo index.
func (l *Layout) Cell(index int) Point {
	col := index % l.Cols
	row := index / l.Cols
	return Point{
		X: l.Origin.X + float64(col)*l.Unit.W,
		Y: l.Origin.Y + float64(row)*l.Unit.H,
	}
}

// PhotoScale fits a photo of the given pixel size into one cell, keeping
// the photo margin free.
func (l *Layout) PhotoScale(photo Size) float64 {
	sx := l.Unit.W / photo.W
	sy := l.Unit.H / photo.H
	return math.Min(sx, sy) * (1 - l.PhotoMargin)
}

// ShadowOffset is how far the drop shadow sits from a photo, in photo pixels.
func (l *Layout) ShadowOffset(photo Size) Point {
	return Point{X: photo.W * l.PhotoMargin / 2, Y: photo.W * l.PhotoMargin / 2}
}

// ProgressBar returns the size and position of the preloader bar.
func ProgressBar(stage Size, albumMargin float64) (Size, Point) {
	bar := Size{W: stage.W * 0.69, H: stage.H * 0.03}
	return bar, Point{
		X: center(stage.W, bar.W),
		Y: center(stage.H*albumMargin/2, bar.H),
	}
}

// ProgressTextHeight is the glyph height of the "now loading" label.
func ProgressTextHeight(stage Size) float64 {
	return stage.H / 28
}

func center(outer, inner float64) float64 {
	return (outer - inner) / 2
}

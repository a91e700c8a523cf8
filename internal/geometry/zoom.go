package geometry

import "math"

// ZoomCurve describes the zoom of one photo from its cell to the target
// scale over a fixed number of frames.
type ZoomCurve struct {
	Frames int
	Target float64
}

// ZoomSample is the transform applied at one step of the curve.
type ZoomSample struct {
	Step   int
	Scale  float64
	Offset Point
	Alpha  float64
}

// Fraction is the eased progress 1 - 2^-i. It approaches 1 quickly and
// never reaches it, so the velocity is not constant.
func (c ZoomCurve) Fraction(i int) float64 {
	return 1 - math.Pow(2, -float64(i))
}

func (c ZoomCurve) Scale(i int) float64 {
	return 1 + c.Fraction(i)*(c.Target-1)
}

// Offset keeps the zoomed photo centered on its cell. size is the photo's
// clip-local size.
func (c ZoomCurve) Offset(size Size, i int) Point {
	x := c.Fraction(i)
	return Point{
		X: -(size.W * (c.Target - 1) / 2) * x,
		Y: -(size.H * (c.Target - 1) / 2) * x,
	}
}

// Alpha is the linear opacity ramp i/n used by fading zoom styles.
func (c ZoomCurve) Alpha(i int) float64 {
	if c.Frames <= 0 {
		return 1
	}
	return float64(i) / float64(c.Frames)
}

func (c ZoomCurve) Sample(size Size, i int) ZoomSample {
	return ZoomSample{
		Step:   i,
		Scale:  c.Scale(i),
		Offset: c.Offset(size, i),
		Alpha:  c.Alpha(i),
	}
}

// CaptionScale shrinks a caption of width captionW to widthRatio of the
// zoomed photo. A caption without width gets scale 0.
func CaptionScale(photo Size, captionW, scale, widthRatio float64) float64 {
	if captionW <= 0 {
		return 0
	}
	return photo.W / captionW * scale * widthRatio
}

// CaptionPoint anchors the caption's top-right corner to the bottom-right
// corner of the zoomed photo.
func CaptionPoint(offset Point, photo Size, scale float64, caption Size, captionScale float64) Point {
	return Point{
		X: offset.X + photo.W*scale - caption.W*captionScale,
		Y: offset.Y + photo.H*scale,
	}
}

package timeline

import (
	"github.com/ivlev/zoomalbum/internal/geometry"
	"github.com/ivlev/zoomalbum/internal/movie"
)

// ZoomStyle decides how a photo looks while it zooms. Normal and Art are
// the only implementations.
type ZoomStyle interface {
	Name() string
	holdFrames(o Options) int
	zoomBorder(o Options) movie.Stroke
	zoomIn(item movie.DisplayItem, s geometry.ZoomSample)
	zoomOut(item movie.DisplayItem, s geometry.ZoomSample)
	restoresIdle() bool
}

// Normal zooms at full opacity with the emphasized border, after a short
// hover delay.
type Normal struct{}

func (Normal) Name() string { return "normal" }
func (Normal) holdFrames(o Options) int { return o.WaitFrames }
func (Normal) zoomBorder(o Options) movie.Stroke { return o.BorderActive }
func (Normal) restoresIdle() bool { return false }
func (Normal) zoomIn(it movie.DisplayItem, s geometry.ZoomSample) { place(it, s) }
func (Normal) zoomOut(it movie.DisplayItem, s geometry.ZoomSample) { place(it, s) }

// Art fades the photo in while zooming and keeps the idle border.
type Art struct{}

func (Art) Name() string { return "art" }
func (Art) holdFrames(Options) int { return 0 }
func (Art) zoomBorder(o Options) movie.Stroke { return o.BorderInactive }
func (Art) restoresIdle() bool { return true }

func (Art) zoomIn(it movie.DisplayItem, s geometry.ZoomSample) {
	place(it, s)
	it.SetAlpha(s.Alpha)
}

func (Art) zoomOut(it movie.DisplayItem, s geometry.ZoomSample) {
	place(it, s)
	it.SetAlpha(s.Alpha)
}

func place(it movie.DisplayItem, s geometry.ZoomSample) {
	it.ScaleTo(s.Scale, s.Scale)
	it.MoveTo(s.Offset.X, s.Offset.Y)
}

func StyleFor(art bool) ZoomStyle {
	if art {
		return Art{}
	}
	return Normal{}
}

// Transition plays the sample frames of a video entry. Plain and Fade are
// the only implementations.
type Transition interface {
	Name() string
	play(c movie.Clip, frames []movie.Character, hold int)
}

// Plain shows each frame for hold frames.
type Plain struct{}

func (Plain) Name() string { return "plain" }

func (Plain) play(c movie.Clip, frames []movie.Character, hold int) {
	var prev movie.DisplayItem
	for _, f := range frames {
		if prev != nil {
			c.Remove(prev)
		}
		prev = c.Add(f)
		for j := 0; j < hold; j++ {
			c.NextFrame()
		}
	}
}

// Fade dissolves each frame into the next one over hold frames.
type Fade struct{}

func (Fade) Name() string { return "fade" }

func (Fade) play(c movie.Clip, frames []movie.Character, hold int) {
	var under, over movie.DisplayItem
	for k, f := range frames {
		if over != nil {
			c.Remove(under)
			c.Remove(over)
		}
		under = c.Add(frames[(k+1)%len(frames)])
		over = c.Add(f)
		for j := 1; j <= hold; j++ {
			over.SetAlpha(1 - float64(j)/float64(hold))
			c.NextFrame()
		}
	}
}

func TransitionFor(noFade bool) Transition {
	if noFade {
		return Plain{}
	}
	return Fade{}
}

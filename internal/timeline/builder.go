// Package timeline emits the animation clip of one album photo.
//
// A clip runs through five segments in fixed order. preload-wait plays a
// short appear animation unless the clip already loaded. loaded stops and
// waits for a trigger. zoom-in grows the photo to the zoom target while a
// counter tracks the frames played. interval shows the caption and blinks
// until the photo is opened or left. zoom-out uses the counter to resume
// at the matching step and finally re-enters loaded.
package timeline

import (
	"github.com/ivlev/zoomalbum/internal/geometry"
	"github.com/ivlev/zoomalbum/internal/movie"
	"github.com/ivlev/zoomalbum/internal/photo"
	"github.com/ivlev/zoomalbum/internal/script"
	"github.com/ivlev/zoomalbum/internal/source"
)

// Segment names in clip order.
const (
	SegmentPreloadWait = "preload-wait"
	SegmentLoaded      = "loaded"
	SegmentZoomIn      = "zoom-in"
	SegmentInterval    = "interval"
	SegmentZoomOut     = "zoom-out"
)

// TextRenderer lays out caption text.
type TextRenderer interface {
	Render(s string, height float64, color movie.Color) movie.TextSpec
}

// Segment is a run of frames; Start is the 1-based first frame.
type Segment struct {
	Name   string
	Start  int
	Frames int
}

// Clip is a built photo clip with its segment and label structure.
type Clip struct {
	Index    int
	Movie    movie.Clip
	Segments []Segment
	Labels   map[string]int
}

func (c *Clip) Segment(name string) (Segment, bool) {
	for _, s := range c.Segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

func (c *Clip) begin(name string) {
	c.close()
	c.Segments = append(c.Segments, Segment{Name: name, Start: c.Movie.FrameCount() + 1})
}

func (c *Clip) close() {
	if n := len(c.Segments); n > 0 {
		c.Segments[n-1].Frames = c.Movie.FrameCount() + 1 - c.Segments[n-1].Start
	}
}

func (c *Clip) label(name string) {
	c.Movie.LabelFrame(name)
	c.Labels[name] = c.Movie.FrameCount() + 1
}

// ResumeOffset is the distance from the zoom_out label to the frame that
// shows zoom step counter. A zero offset continues at the next frame.
func ResumeOffset(frames, counter int) int {
	return frames - counter
}

// Builder emits photo clips into a sink.
type Builder struct {
	sink       movie.Sink
	layout     *geometry.Layout
	curve      geometry.ZoomCurve
	style      ZoomStyle
	transition Transition
	text       TextRenderer
	opts       Options
}

func NewBuilder(sink movie.Sink, layout *geometry.Layout, style ZoomStyle, transition Transition, text TextRenderer, opts Options) *Builder {
	return &Builder{
		sink:       sink,
		layout:     layout,
		curve:      geometry.ZoomCurve{Frames: opts.ZoomFrames, Target: layout.ZoomScale},
		style:      style,
		transition: transition,
		text:       text,
		opts:       opts,
	}
}

func (b *Builder) Curve() geometry.ZoomCurve {
	return b.curve
}

// Build emits the clip of e. The clip is not placed anywhere.
func (b *Builder) Build(e *photo.Entry) *Clip {
	c := &Clip{Index: e.Index, Movie: b.sink.NewClip(), Labels: map[string]int{}}
	clip := c.Movie
	n := b.opts.ZoomFrames
	bitmaps := map[*source.Bitmap]movie.Character{}

	idle := b.photoClip(e, b.opts.BorderInactive, bitmaps)
	zoomed := idle
	if border := b.style.zoomBorder(b.opts); border != b.opts.BorderInactive {
		zoomed = b.photoClip(e, border, bitmaps)
	}

	c.begin(SegmentPreloadWait)
	clip.AddScript(script.LoadCheck())
	item := clip.Add(idle)
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		item.ScaleTo(2-f, 2-f)
		item.SetAlpha(f)
		clip.NextFrame()
	}

	c.begin(SegmentLoaded)
	c.label(script.LabelLoaded)
	clip.AddScript(script.MarkLoaded())
	clip.NextFrame()

	c.begin(SegmentZoomIn)
	c.label(script.LabelZoomIn)
	clip.AddScript(script.ResetCounter())
	clip.NextFrame()
	for i := 0; i < b.style.holdFrames(b.opts); i++ {
		clip.NextFrame()
	}
	clip.Remove(item)
	item = clip.Add(zoomed)
	b.style.zoomIn(item, b.curve.Sample(e.Size, 0))
	clip.AddScript(script.RaiseDepth())
	clip.NextFrame()
	for i := 1; i <= n; i++ {
		b.style.zoomIn(item, b.curve.Sample(e.Size, i))
		clip.AddScript(script.Increment())
		clip.NextFrame()
	}

	c.begin(SegmentInterval)
	if b.opts.Captions {
		b.addCaption(clip, e)
		clip.NextFrame()
	}
	clip.AddScript(script.StartBlink())
	clip.NextFrame()
	c.label(script.LabelBlink)
	clip.AddScript(script.Blink())
	clip.NextFrame()
	clip.AddScript(script.Goto(script.LabelBlink))
	clip.NextFrame()
	c.label(script.LabelOpen)
	clip.AddScript(script.Open(e.PageURL))
	clip.NextFrame()

	c.begin(SegmentZoomOut)
	c.label(script.LabelZoomOut)
	clip.AddScript(script.ZoomOut(n, b.opts.Captions))
	clip.NextFrame()
	for i := n - 1; i >= 1; i-- {
		b.style.zoomOut(item, b.curve.Sample(e.Size, i))
		clip.AddScript(script.Decrement())
		clip.NextFrame()
	}
	if b.style.restoresIdle() {
		clip.Remove(item)
		clip.Add(idle)
	}
	clip.AddScript(script.Goto(script.LabelLoaded))
	clip.NextFrame()
	c.close()

	return c
}

// photoClip is the photo with its drop shadow and border, or for videos
// the sample frames played by the transition.
func (b *Builder) photoClip(e *photo.Entry, border movie.Stroke, bitmaps map[*source.Bitmap]movie.Character) movie.Character {
	c := b.sink.NewClip()

	shadow := b.sink.NewShape(movie.ShapeSpec{
		Width:  e.Size.W,
		Height: e.Size.H,
		Fill:   &movie.Fill{Color: &b.opts.Shadow},
	})
	off := b.layout.ShadowOffset(e.Size)
	c.Add(shadow).MoveTo(off.X, off.Y)

	if !e.IsVideo() {
		c.Add(b.image(e.Bitmap, e.Size, border, bitmaps))
		c.NextFrame()
		return c
	}

	frames := make([]movie.Character, 0, len(e.Samples))
	for _, s := range e.Samples {
		frames = append(frames, b.image(s, e.Size, border, bitmaps))
	}
	b.transition.play(c, frames, b.opts.TransitionFrames)
	return c
}

func (b *Builder) image(bm *source.Bitmap, size geometry.Size, border movie.Stroke, bitmaps map[*source.Bitmap]movie.Character) movie.Character {
	ch, ok := bitmaps[bm]
	if !ok {
		ch = b.sink.NewBitmap(bm)
		bitmaps[bm] = ch
	}
	stroke := border
	return b.sink.NewShape(movie.ShapeSpec{
		Width:  size.W,
		Height: size.H,
		Fill:   &movie.Fill{Bitmap: ch.ID()},
		Stroke: &stroke,
	})
}

// addCaption places the caption under the fully zoomed photo.
func (b *Builder) addCaption(clip movie.Clip, e *photo.Entry) {
	h := b.opts.CaptionHeight
	off := b.opts.CaptionOffset()
	spec := b.text.Render(e.Caption, h-2*off, b.opts.CaptionText)

	size := geometry.Size{W: spec.Advance + 2*off, H: h}
	stroke := b.opts.CaptionBorder
	frame := b.sink.NewShape(movie.ShapeSpec{
		Width:  size.W,
		Height: size.H,
		Fill:   &movie.Fill{Color: &b.opts.CaptionFrame},
		Stroke: &stroke,
	})

	caption := b.sink.NewClip()
	caption.Add(frame)
	caption.Add(b.sink.NewText(spec)).MoveTo(off, off)
	caption.NextFrame()

	final := b.curve.Sample(e.Size, b.opts.ZoomFrames)
	scale := geometry.CaptionScale(e.Size, size.W, final.Scale, b.opts.CaptionWidthRatio)
	at := geometry.CaptionPoint(final.Offset, e.Size, final.Scale, size, scale)

	item := clip.Add(caption)
	item.ScaleTo(scale, scale)
	item.MoveTo(at.X, at.Y)
	item.SetName(script.CaptionName)
}

// HitRegion is the invisible button over photo e. Releasing it opens the
// photo; enter and leave run when the pointer crosses it.
func (b *Builder) HitRegion(e *photo.Entry, enter, leave string) movie.Button {
	transparent := movie.Color{}
	shape := b.sink.NewShape(movie.ShapeSpec{
		Width:  e.Size.W,
		Height: e.Size.H,
		Fill:   &movie.Fill{Color: &transparent},
	})

	btn := b.sink.NewButton()
	btn.AddRegion(shape, movie.RegionHit)
	btn.BindAction(movie.EventRelease, script.OpenPhoto(e.Index))
	btn.BindAction(movie.EventRollOver, enter)
	btn.BindAction(movie.EventRollOut, leave)
	return btn
}

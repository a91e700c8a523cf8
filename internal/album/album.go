// Package album assembles the complete zooming album document: the
// navigation state and preloader in a frame of their own, one clip and hit
// region per photo in grid order, and the final stop.
package album

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ivlev/zoomalbum/internal/config"
	"github.com/ivlev/zoomalbum/internal/geometry"
	"github.com/ivlev/zoomalbum/internal/movie"
	"github.com/ivlev/zoomalbum/internal/navigation"
	"github.com/ivlev/zoomalbum/internal/photo"
	"github.com/ivlev/zoomalbum/internal/progress"
	"github.com/ivlev/zoomalbum/internal/script"
	"github.com/ivlev/zoomalbum/internal/source"
	"github.com/ivlev/zoomalbum/internal/timeline"
)

var (
	ErrNoPhotos = errors.New("album has no photos")
	ErrAborted  = progress.ErrAborted
)

// Assembler builds one album per call to Assemble.
type Assembler struct {
	Config   *config.Config
	Sink     movie.Sink
	Source   source.AssetSource
	Text     timeline.TextRenderer
	Progress progress.Sink
}

// Result describes an assembled album.
type Result struct {
	Output string
	Layout *geometry.Layout
	Clips  []*timeline.Clip
}

func (a *Assembler) params() geometry.Params {
	cfg := a.Config
	return geometry.Params{
		Stage:        geometry.Size{W: float64(cfg.Stage.Width), H: float64(cfg.Stage.Height)},
		AlbumMargin:  cfg.Margins.Album,
		BottomMargin: cfg.Margins.Bottom,
		PhotoMargin:  cfg.Margins.Photo,
	}
}

// Assemble writes the album of inputs to output. Every loaded photo stays
// open until the document is finalized and is released on return, also
// on failure or abort.
func (a *Assembler) Assemble(ctx context.Context, inputs []photo.Input, output string) (res *Result, err error) {
	if len(inputs) == 0 {
		return nil, ErrNoPhotos
	}
	cfg := a.Config

	layout := geometry.NewLayout(len(inputs), a.params())
	builder := timeline.NewBuilder(a.Sink, layout,
		timeline.StyleFor(cfg.Art), timeline.TransitionFor(cfg.NoFade), a.Text, timeline.OptionsFrom(cfg))

	nav := navigation.NewController(layout.Cols, len(inputs))
	nav.Install(a.Sink)
	a.preloader(layout)
	// Photos start on the next frame so the preloader shows first.
	a.Sink.Root().NextFrame()

	var entries []*photo.Entry
	defer func() {
		if cerr := photo.CloseAll(entries); cerr != nil && err == nil {
			err = fmt.Errorf("release photos: %w", cerr)
		}
	}()

	res = &Result{Output: output, Layout: layout}
	root := a.Sink.Root()

	a.Progress.Start("movie", len(inputs))
	for i, in := range inputs {
		if err := progress.Checkpoint(ctx, a.Progress); err != nil {
			return nil, err
		}

		e, err := photo.Load(ctx, a.Source, i, in, cfg.Frames.Samples)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)

		clip := builder.Build(e)
		res.Clips = append(res.Clips, clip)

		at := layout.Cell(i)
		scale := layout.PhotoScale(e.Size)

		item := root.Add(clip.Movie)
		item.SetName(script.ClipName(i))
		item.ScaleTo(scale, scale)
		item.MoveTo(at.X, at.Y)

		enter, leave := nav.HoverActions(i)
		hit := root.Add(builder.HitRegion(e, enter, leave))
		hit.ScaleTo(scale, scale)
		hit.MoveTo(at.X, at.Y)

		root.NextFrame()
		a.Progress.Step(i, filepath.Base(in.Source))
	}
	a.Progress.Finish()

	root.AddScript(script.Stop())

	opts := movie.Options{
		FrameRate:  cfg.Stage.FrameRate,
		Width:      layout.Stage.W,
		Height:     layout.Stage.H,
		Background: movie.MustParseColor(cfg.Colors.Background),
	}
	if err := a.Sink.Finalize(output, opts); err != nil {
		return nil, fmt.Errorf("finalize %s: %w", output, err)
	}
	return res, nil
}

// preloader shows a "now loading" housing and a bar that follows the
// loaded byte count, both hidden once loading completes.
func (a *Assembler) preloader(layout *geometry.Layout) {
	cfg := a.Config
	sink := a.Sink

	size, at := geometry.ProgressBar(layout.Stage, cfg.Margins.Album)
	textHeight := geometry.ProgressTextHeight(layout.Stage)

	housing := sink.NewClip()
	housing.Add(sink.NewShape(movie.ShapeSpec{
		Width:  size.W,
		Height: size.H,
		Stroke: &movie.Stroke{Width: cfg.Borders.ProgressLine, Color: movie.MustParseColor(cfg.Colors.ProgressFrame)},
	}))
	label := a.Text.Render(script.PreloadText, textHeight, movie.MustParseColor(cfg.Colors.ProgressText))
	housing.Add(sink.NewText(label)).MoveTo((size.W-label.Advance)/2, (size.H-textHeight)/2)
	housing.NextFrame()

	barColor := movie.MustParseColor(cfg.Colors.ProgressBar)
	bar := sink.NewClip()
	bar.Add(sink.NewShape(movie.ShapeSpec{Width: size.W, Height: size.H, Fill: &movie.Fill{Color: &barColor}}))
	bar.NextFrame()
	bar.AddScript(script.BarPoll())
	bar.NextFrame()

	root := sink.Root()
	h := root.Add(housing)
	h.SetName(script.ProgressHousingName)
	h.MoveTo(at.X, at.Y)

	b := root.Add(bar)
	b.SetName(script.ProgressBarName)
	b.MoveTo(at.X, at.Y)
	b.BindAction(movie.EventLoad, script.BarInit())
}

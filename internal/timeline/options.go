package timeline

import (
	"github.com/ivlev/zoomalbum/internal/config"
	"github.com/ivlev/zoomalbum/internal/movie"
)

// Options are the album-wide settings of every clip.
type Options struct {
	ZoomFrames       int
	WaitFrames       int
	TransitionFrames int

	Captions          bool
	CaptionHeight     float64
	CaptionMargin     float64
	CaptionWidthRatio float64

	BorderInactive movie.Stroke
	BorderActive   movie.Stroke
	CaptionBorder  movie.Stroke
	Shadow         movie.Color
	CaptionFrame   movie.Color
	CaptionText    movie.Color
}

// OptionsFrom expects a validated config.
func OptionsFrom(cfg *config.Config) Options {
	c := cfg.Colors
	return Options{
		ZoomFrames:        cfg.Frames.Zoom,
		WaitFrames:        cfg.Frames.Wait,
		TransitionFrames:  cfg.Frames.Transition,
		Captions:          !cfg.Caption.Disabled,
		CaptionHeight:     cfg.Caption.Height,
		CaptionMargin:     cfg.Caption.Margin,
		CaptionWidthRatio: cfg.Caption.WidthRatio,
		BorderInactive:    movie.Stroke{Width: cfg.Borders.Inactive, Color: movie.MustParseColor(c.BorderInactive)},
		BorderActive:      movie.Stroke{Width: cfg.Borders.Active, Color: movie.MustParseColor(c.BorderActive)},
		CaptionBorder:     movie.Stroke{Width: cfg.Borders.Caption, Color: movie.MustParseColor(c.CaptionBorder)},
		Shadow:            movie.MustParseColor(c.Shadow),
		CaptionFrame:      movie.MustParseColor(c.CaptionFrame),
		CaptionText:       movie.MustParseColor(c.CaptionText),
	}
}

// CaptionOffset is the padding between the caption frame and its text.
func (o Options) CaptionOffset() float64 {
	return o.CaptionHeight * o.CaptionMargin / 2
}

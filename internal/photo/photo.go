// Package photo models one album entry and the bitmaps it holds open.
package photo

import (
	"context"
	"errors"
	"time"

	"github.com/ivlev/zoomalbum/internal/geometry"
	"github.com/ivlev/zoomalbum/internal/source"
)

// Input describes an entry before its bitmaps are loaded.
type Input struct {
	Source    string
	Kind      source.Kind
	Page      int // document page, 0-based
	Time      time.Time
	Thumbnail string
	PageURL   string
	Caption   string
}

// Entry is a loaded album photo. Index is its position in the grid.
type Entry struct {
	Index int
	Input

	Size    geometry.Size
	Bitmap  *source.Bitmap
	Samples []*source.Bitmap
}

// Load opens the entry's thumbnail and, for videos, up to samples frames.
// The returned entry owns every handle until Close.
func Load(ctx context.Context, src source.AssetSource, index int, in Input, samples int) (*Entry, error) {
	bm, err := src.LoadBitmap(in.Thumbnail)
	if err != nil {
		return nil, err
	}

	e := &Entry{Index: index, Input: in, Bitmap: bm}
	w, h := bm.Size()
	e.Size = geometry.Size{W: float64(w), H: float64(h)}

	if in.Kind == source.KindVideo {
		frames, err := src.LoadSampleFrames(ctx, in.Source, samples)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.Samples = frames
	}
	return e, nil
}

func (e *Entry) IsVideo() bool {
	return len(e.Samples) > 0
}

// Close releases every bitmap of the entry.
func (e *Entry) Close() error {
	var errs []error
	if e.Bitmap != nil {
		errs = append(errs, e.Bitmap.Close())
	}
	for _, s := range e.Samples {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

// CloseAll releases entries in order, reporting every failure.
func CloseAll(entries []*Entry) error {
	var errs []error
	for _, e := range entries {
		errs = append(errs, e.Close())
	}
	return errors.Join(errs...)
}

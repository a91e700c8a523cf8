// Package thumbnail writes the scaled JPEG copies the album embeds.
package thumbnail

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/zoomalbum/internal/photo"
	"github.com/ivlev/zoomalbum/internal/progress"
	"github.com/ivlev/zoomalbum/internal/source"
)

const (
	JPEGQuality = 90
	PageDPI     = 150
)

// Generator renders thumbnails with up to Workers goroutines.
type Generator struct {
	Width    int
	Gamma    float64
	Workers  int
	TempDir  string
	FFmpeg   string
	Progress progress.Sink
}

// Run writes a thumbnail for every input whose thumbnail is missing or
// older than its source.
func (g *Generator) Run(ctx context.Context, inputs []photo.Input) error {
	if len(inputs) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(inputs[0].Thumbnail), 0755); err != nil {
		return err
	}

	g.Progress.Start("thumbnail", len(inputs))
	defer g.Progress.Finish()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Workers)

	var done atomic.Int32
	for _, in := range inputs {
		if err := progress.Checkpoint(ctx, g.Progress); err != nil {
			if werr := eg.Wait(); werr != nil {
				return werr
			}
			return err
		}
		eg.Go(func() error {
			if err := g.one(ctx, in); err != nil {
				return err
			}
			g.Progress.Step(int(done.Add(1))-1, filepath.Base(in.Thumbnail))
			return nil
		})
	}
	return eg.Wait()
}

func (g *Generator) one(ctx context.Context, in photo.Input) error {
	if upToDate(in.Source, in.Thumbnail) {
		return nil
	}

	img, err := g.decode(ctx, in)
	if err != nil {
		return err
	}
	if err := g.Write(img, in.Thumbnail); err != nil {
		return &source.AssetError{Path: in.Source, Err: err}
	}
	return nil
}

func (g *Generator) decode(ctx context.Context, in photo.Input) (image.Image, error) {
	switch in.Kind {
	case source.KindVideo:
		frame := filepath.Join(g.TempDir, fmt.Sprintf("poster-%s.jpg", filepath.Base(in.Thumbnail)))
		if err := source.ExtractFrame(ctx, g.ffmpeg(), in.Source, 0, g.Width, frame); err != nil {
			return nil, &source.AssetError{Path: in.Source, Err: err}
		}
		defer os.Remove(frame)
		return open(frame)
	case source.KindDocument:
		doc, err := source.OpenPDF(in.Source)
		if err != nil {
			return nil, err
		}
		defer doc.Close()
		return doc.RenderPage(in.Page, PageDPI)
	default:
		return open(in.Source)
	}
}

func open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &source.AssetError{Path: path, Err: err}
	}
	return img, nil
}

// Write scales img to the generator width and saves it as JPEG. Images
// narrower than the width are not enlarged.
func (g *Generator) Write(img image.Image, path string) error {
	if g.Gamma > 0 && g.Gamma != 1 {
		img = imaging.AdjustGamma(img, g.Gamma)
	}
	if img.Bounds().Dx() > g.Width {
		img = imaging.Resize(img, g.Width, 0, imaging.Lanczos)
	}
	return imaging.Save(img, path, imaging.JPEGQuality(JPEGQuality))
}

func (g *Generator) ffmpeg() string {
	if g.FFmpeg == "" {
		return "ffmpeg"
	}
	return g.FFmpeg
}

func upToDate(src, dst string) bool {
	d, err := os.Stat(dst)
	if err != nil {
		return false
	}
	s, err := os.Stat(src)
	if err != nil {
		return false
	}
	return !d.ModTime().Before(s.ModTime())
}

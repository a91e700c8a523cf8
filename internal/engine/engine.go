package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ivlev/zoomalbum/internal/album"
	"github.com/ivlev/zoomalbum/internal/catalog"
	"github.com/ivlev/zoomalbum/internal/config"
	"github.com/ivlev/zoomalbum/internal/movie"
	"github.com/ivlev/zoomalbum/internal/photo"
	"github.com/ivlev/zoomalbum/internal/progress"
	"github.com/ivlev/zoomalbum/internal/source"
	"github.com/ivlev/zoomalbum/internal/system"
	"github.com/ivlev/zoomalbum/internal/text"
	"github.com/ivlev/zoomalbum/internal/thumbnail"
	"github.com/ivlev/zoomalbum/internal/timeline"
)

// AlbumProject runs the whole pipeline: catalog, thumbnails, movie.
type AlbumProject struct {
	Config       *config.Config
	Progress     progress.Sink
	BenchmarkLog string
	tempDir      string
}

func NewAlbumProject(cfg *config.Config, p progress.Sink) *AlbumProject {
	return &AlbumProject{Config: cfg, Progress: p, BenchmarkLog: "benchmark.log"}
}

// Stats are the stage timings of one run.
type Stats struct {
	Photos     int
	Videos     int
	Catalog    time.Duration
	Thumbnails time.Duration
	Movie      time.Duration
	Total      time.Duration
}

func (p *AlbumProject) Run(ctx context.Context) (*album.Result, error) {
	startTime := time.Now()
	cfg := p.Config
	var stats Stats

	var err error
	p.tempDir, err = os.MkdirTemp("", "zoomalbum_")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(p.tempDir)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}

	inputs, err := catalog.New(cfg.Catalog, cfg.OutputDir).Collect(cfg.Inputs)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: nothing usable in %v", album.ErrNoPhotos, cfg.Inputs)
	}
	stats.Photos = len(inputs)
	stats.Videos = countVideos(inputs)
	stats.Catalog = time.Since(startTime)

	if stats.Videos > 0 {
		if err := system.CheckFFmpeg("ffmpeg", "ffprobe"); err != nil {
			return nil, err
		}
	}

	fmt.Printf("[*] Photos: %d (videos: %d) | Stage: %dx%d @ %d FPS | Style: %s/%s\n",
		stats.Photos, stats.Videos, cfg.Stage.Width, cfg.Stage.Height, cfg.Stage.FrameRate,
		timeline.StyleFor(cfg.Art).Name(), timeline.TransitionFor(cfg.NoFade).Name())

	thumbStart := time.Now()
	gen := &thumbnail.Generator{
		Width:    cfg.ThumbnailWidth,
		Gamma:    cfg.Gamma,
		Workers:  cfg.Workers,
		TempDir:  p.tempDir,
		Progress: p.Progress,
	}
	if err := gen.Run(ctx, inputs); err != nil {
		return nil, fmt.Errorf("thumbnails: %w", err)
	}
	stats.Thumbnails = time.Since(thumbStart)

	system.InitResourceLimits(stats.Photos + stats.Videos*cfg.Frames.Samples)

	txt, err := text.Load(cfg.Font)
	if err != nil {
		return nil, err
	}

	movieStart := time.Now()
	asm := &album.Assembler{
		Config:   cfg,
		Sink:     movie.NewDocument(),
		Source:   source.NewFileSource(p.tempDir, cfg.ThumbnailWidth),
		Text:     txt,
		Progress: p.Progress,
	}
	res, err := asm.Assemble(ctx, inputs, filepath.Join(cfg.OutputDir, cfg.MovieFile))
	if err != nil {
		return nil, err
	}
	stats.Movie = time.Since(movieStart)

	fmt.Printf("[*] Album: %s (%dx%d grid, zoom x%.2f)\n", res.Output, res.Layout.Cols, res.Layout.Rows, res.Layout.ZoomScale)

	if cfg.AlbumURL != "" {
		qr, err := WriteShareCode(cfg.AlbumURL, cfg.OutputDir)
		if err != nil {
			return nil, err
		}
		fmt.Printf("[*] Share code: %s\n", qr)
	}

	stats.Total = time.Since(startTime)
	if cfg.ShowStats {
		p.report(stats)
	}
	return res, nil
}

func countVideos(inputs []photo.Input) int {
	n := 0
	for _, in := range inputs {
		if in.Kind == source.KindVideo {
			n++
		}
	}
	return n
}

func (p *AlbumProject) report(s Stats) {
	snap := system.TakeSnapshot()
	fmt.Print(FormatReport(p.Config.BuildVersion, s, snap))

	logEntry := fmt.Sprintf("[%s] Build: %s | Photos: %d | Videos: %d | Total: %.2fs | Thumbnails: %.2fs | Movie: %.2fs | RSS: %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		s.Photos,
		s.Videos,
		s.Total.Seconds(),
		s.Thumbnails.Seconds(),
		s.Movie.Seconds(),
		system.FormatBytes(snap.RSS),
	)

	f, err := os.OpenFile(p.BenchmarkLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Could not write %s: %v\n", p.BenchmarkLog, err)
	}
}

func FormatReport(build string, s Stats, snap system.Snapshot) string {
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Photos: %d (videos: %d)\n"+
			"Total Time: %.2fs\n"+
			"Catalog: %.2fs\n"+
			"Thumbnails: %.2fs\n"+
			"Movie: %.2fs\n"+
			"%s\n"+
			"----------------------------\n",
		build, s.Photos, s.Videos, s.Total.Seconds(), s.Catalog.Seconds(), s.Thumbnails.Seconds(), s.Movie.Seconds(), snap,
	)
}

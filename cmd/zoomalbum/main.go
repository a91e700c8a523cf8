package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ivlev/zoomalbum/internal/config"
	"github.com/ivlev/zoomalbum/internal/engine"
	"github.com/ivlev/zoomalbum/internal/progress"
)

var version = "dev"

// configPath finds -config before flag parsing so the file can supply
// the defaults the remaining flags override.
func configPath(args []string) string {
	for i, a := range args {
		a = strings.TrimLeft(a, "-")
		switch {
		case a == "config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(a, "config="):
			return strings.TrimPrefix(a, "config=")
		}
	}
	return ""
}

func main() {
	cfg := config.Default()
	if path := configPath(os.Args[1:]); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("[-] Config: %v", err)
		}
		cfg = loaded
	}

	flag.String("config", "", "YAML or TOML settings file; flags override it")
	dumpPtr := flag.Bool("dump-config", false, "Print the effective settings as YAML and exit")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Output directory for the movie and thumbnails")
	flag.StringVar(&cfg.MovieFile, "movie", cfg.MovieFile, "Movie document file name inside the output directory")
	flag.IntVar(&cfg.Stage.Width, "width", cfg.Stage.Width, "Stage width")
	flag.IntVar(&cfg.Stage.Height, "height", cfg.Stage.Height, "Stage height")
	flag.IntVar(&cfg.Stage.FrameRate, "fps", cfg.Stage.FrameRate, "Frame rate")
	flag.IntVar(&cfg.Frames.Zoom, "zoom-frames", cfg.Frames.Zoom, "Frames per zoom animation")
	flag.IntVar(&cfg.Frames.Wait, "wait-frames", cfg.Frames.Wait, "Frames the border is held before zooming")
	flag.IntVar(&cfg.Frames.Transition, "transition-frames", cfg.Frames.Transition, "Frames per movie sample")
	flag.IntVar(&cfg.Frames.Samples, "samples", cfg.Frames.Samples, "Frames sampled from each movie")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Thumbnail workers")
	flag.IntVar(&cfg.ThumbnailWidth, "thumbnail-width", cfg.ThumbnailWidth, "Thumbnail width in pixels")
	flag.Float64Var(&cfg.Gamma, "gamma", cfg.Gamma, "Gamma correction applied to thumbnails")
	flag.BoolVar(&cfg.Art, "art", cfg.Art, "Art style: no held border, fading zoom")
	flag.BoolVar(&cfg.NoFade, "no-fade", cfg.NoFade, "Cut between movie samples instead of fading")
	flag.BoolVar(&cfg.Caption.Disabled, "no-caption", cfg.Caption.Disabled, "Disable captions")
	flag.StringVar(&cfg.Catalog.CaptionFile, "caption-file", cfg.Catalog.CaptionFile, "Tab separated file of name and caption")
	flag.BoolVar(&cfg.Catalog.CaptionByFilename, "caption-by-filename", cfg.Catalog.CaptionByFilename, "Use file names as captions")
	flag.BoolVar(&cfg.Catalog.SortByFilename, "sort-by-filename", cfg.Catalog.SortByFilename, "Sort by file name instead of time")
	flag.BoolVar(&cfg.Catalog.NoSort, "no-sort", cfg.Catalog.NoSort, "Keep argument order")
	flag.BoolVar(&cfg.Catalog.NoExif, "no-exif", cfg.Catalog.NoExif, "Ignore EXIF time stamps")
	flag.BoolVar(&cfg.Catalog.Sequential, "sequential", cfg.Catalog.Sequential, "Name pages 000001, 000002, ...")
	flag.StringVar(&cfg.Catalog.HTMLSuffix, "html-suffix", cfg.Catalog.HTMLSuffix, "Suffix appended to photo page links")
	flag.StringVar(&cfg.Font, "font", cfg.Font, "TrueType or OpenType font for captions (env "+config.FontEnv+")")
	flag.StringVar(&cfg.AlbumURL, "url", cfg.AlbumURL, "Published album URL, written as a QR code")
	flag.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "No progress output")
	flag.BoolVar(&cfg.ShowStats, "stats", cfg.ShowStats, "Print a performance report and append it to benchmark.log")

	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		cfg.Inputs = args
	}
	cfg.BuildVersion = version

	if *dumpPtr {
		if err := config.Write(os.Stdout, cfg); err != nil {
			log.Fatalf("[-] Config: %v", err)
		}
		return
	}

	if len(cfg.Inputs) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] photo|movie|pdf|dir ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sink progress.Sink = progress.NewConsole(os.Stdout)
	if cfg.Quiet {
		sink = &progress.Quiet{}
	}

	project := engine.NewAlbumProject(cfg, sink)
	res, err := project.Run(ctx)
	if err != nil {
		if errors.Is(err, progress.ErrAborted) || errors.Is(err, context.Canceled) {
			log.Fatalf("[-] Aborted")
		}
		log.Fatalf("[-] Album failed: %v", err)
	}

	fmt.Printf("[+++] Done! Album: %s\n", res.Output)
}

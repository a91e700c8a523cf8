package engine

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/zoomalbum/internal/album"
	"github.com/ivlev/zoomalbum/internal/config"
	"github.com/ivlev/zoomalbum/internal/movie"
	"github.com/ivlev/zoomalbum/internal/progress"
	"github.com/ivlev/zoomalbum/internal/system"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	in := t.TempDir()
	writePNG(t, filepath.Join(in, "a.png"), 640, 480)
	writePNG(t, filepath.Join(in, "b.png"), 480, 640)
	writePNG(t, filepath.Join(in, "c.png"), 200, 100)

	cfg := config.Default()
	cfg.Inputs = []string{in}
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Workers = 2
	cfg.Font = ""
	cfg.Catalog.SortByFilename = true
	return cfg
}

func TestRunBuildsAlbum(t *testing.T) {
	cfg := testConfig(t)
	p := NewAlbumProject(cfg, &progress.Quiet{})

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutputDir, cfg.MovieFile), res.Output)
	assert.Equal(t, 2, res.Layout.Cols)
	assert.Equal(t, 2, res.Layout.Rows)
	assert.Len(t, res.Clips, 3)

	f, err := movie.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Len(t, f.Timeline, 5)

	thumbs, err := filepath.Glob(filepath.Join(cfg.OutputDir, cfg.Catalog.ThumbnailPrefix+"*.jpg"))
	require.NoError(t, err)
	assert.Len(t, thumbs, 3)

	_, err = os.Stat(p.tempDir)
	assert.True(t, os.IsNotExist(err), "temp dir should be removed")
}

func TestRunWritesShareCode(t *testing.T) {
	cfg := testConfig(t)
	cfg.AlbumURL = "https://example.com/album/"

	_, err := NewAlbumProject(cfg, &progress.Quiet{}).Run(context.Background())
	require.NoError(t, err)

	st, err := os.Stat(filepath.Join(cfg.OutputDir, "qr.png"))
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestRunAppendsBenchmarkLog(t *testing.T) {
	cfg := testConfig(t)
	cfg.ShowStats = true
	cfg.BuildVersion = "test"
	p := NewAlbumProject(cfg, &progress.Quiet{})
	p.BenchmarkLog = filepath.Join(t.TempDir(), "benchmark.log")

	_, err := p.Run(context.Background())
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(p.BenchmarkLog)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Build: test | Photos: 3 | Videos: 0")
}

func TestRunNoPhotos(t *testing.T) {
	cfg := config.Default()
	cfg.Inputs = []string{t.TempDir()}
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")

	_, err := NewAlbumProject(cfg, &progress.Quiet{}).Run(context.Background())
	assert.True(t, errors.Is(err, album.ErrNoPhotos), "got %v", err)
}

func TestRunAborted(t *testing.T) {
	cfg := testConfig(t)
	q := &progress.Quiet{}
	q.Abort()

	_, err := NewAlbumProject(cfg, q).Run(context.Background())
	assert.ErrorIs(t, err, progress.ErrAborted)
	_, serr := os.Stat(filepath.Join(cfg.OutputDir, cfg.MovieFile))
	assert.True(t, os.IsNotExist(serr))
}

func TestFormatReport(t *testing.T) {
	s := Stats{Photos: 12, Videos: 2, Total: 3 * time.Second, Thumbnails: time.Second, Movie: 1500 * time.Millisecond}
	out := FormatReport("v1", s, system.Snapshot{CPUs: 4})

	assert.True(t, strings.HasPrefix(out, "--- [PERFORMANCE REPORT] ---\n"))
	assert.Contains(t, out, "Photos: 12 (videos: 2)")
	assert.Contains(t, out, "Total Time: 3.00s")
	assert.Contains(t, out, "Movie: 1.50s")
	assert.Contains(t, out, "CPUs: 4")
}

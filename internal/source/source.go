package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AssetSource loads the bitmaps of an album.
type AssetSource interface {
	LoadBitmap(path string) (*Bitmap, error)
	// LoadSampleFrames returns up to count frames evenly spread over a
	// video. Short videos may yield fewer.
	LoadSampleFrames(ctx context.Context, path string, count int) ([]*Bitmap, error)
}

// FileSource reads bitmaps from disk and samples videos with ffmpeg into
// TempDir.
type FileSource struct {
	TempDir string
	Width   int
	FFmpeg  string
	FFprobe string
}

func NewFileSource(tempDir string, width int) *FileSource {
	return &FileSource{TempDir: tempDir, Width: width, FFmpeg: "ffmpeg", FFprobe: "ffprobe"}
}

func (s *FileSource) LoadBitmap(path string) (*Bitmap, error) {
	return OpenBitmap(path)
}

func (s *FileSource) LoadSampleFrames(ctx context.Context, path string, count int) ([]*Bitmap, error) {
	duration, err := MediaDuration(ctx, s.FFprobe, path)
	if err != nil {
		return nil, assetError(path, fmt.Errorf("broken movie file: %w", err))
	}

	// Movies sharing a base name in different directories must not
	// overwrite each other's frames while their handles are open.
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir, err := os.MkdirTemp(s.TempDir, base+"-")
	if err != nil {
		return nil, assetError(path, err)
	}

	var frames []*Bitmap
	for k := 0; k < count; k++ {
		at := duration * (float64(k) + 0.5) / float64(count)
		out := filepath.Join(dir, fmt.Sprintf("%s-%03d.jpg", base, k))
		if err := ExtractFrame(ctx, s.FFmpeg, path, at, s.Width, out); err != nil {
			if len(frames) > 0 {
				break
			}
			return nil, assetError(path, fmt.Errorf("broken movie file: %w", err))
		}

		bm, err := OpenBitmap(out)
		if err != nil {
			closeAll(frames)
			return nil, err
		}
		frames = append(frames, bm)
	}
	return frames, nil
}

func closeAll(frames []*Bitmap) {
	for _, f := range frames {
		f.Close()
	}
}

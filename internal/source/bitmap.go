package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Bitmap is an encoded image file held open until Close. The document
// reads its bytes at finalization.
type Bitmap struct {
	path   string
	width  int
	height int
	file   *os.File
	size   int64
}

// OpenBitmap opens path and decodes only its header.
func OpenBitmap(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, assetError(path, err)
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		f.Close()
		return nil, assetError(path, fmt.Errorf("decode header: %w", err))
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, assetError(path, err)
	}

	return &Bitmap{path: path, width: cfg.Width, height: cfg.Height, file: f, size: fi.Size()}, nil
}

func (b *Bitmap) Path() string {
	return b.path
}

func (b *Bitmap) Size() (int, int) {
	return b.width, b.height
}

// ReadAll fails once the bitmap has been closed.
func (b *Bitmap) ReadAll() ([]byte, error) {
	if b.file == nil {
		return nil, os.ErrClosed
	}
	return io.ReadAll(io.NewSectionReader(b.file, 0, b.size))
}

func (b *Bitmap) Close() error {
	if b.file == nil {
		return nil
	}
	err := b.file.Close()
	b.file = nil
	return err
}

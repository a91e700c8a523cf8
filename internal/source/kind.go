package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindVideo
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindDocument:
		return "document"
	}
	return "unknown"
}

var extKinds = map[string]Kind{
	".jpg": KindImage, ".jpeg": KindImage, ".png": KindImage, ".gif": KindImage,
	".bmp": KindImage, ".webp": KindImage,
	".avi": KindVideo, ".mpg": KindVideo, ".mpeg": KindVideo, ".mov": KindVideo,
	".mp4": KindVideo, ".mkv": KindVideo, ".webm": KindVideo,
	".pdf": KindDocument,
}

// Detect sniffs the file header, falling back to the extension for formats
// without a recognizable signature.
func Detect(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, assetError(path, err)
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return KindUnknown, assetError(path, err)
	}
	head = head[:n]

	switch {
	case filetype.IsImage(head):
		return KindImage, nil
	case filetype.IsVideo(head):
		return KindVideo, nil
	case filetype.Is(head, "pdf"):
		return KindDocument, nil
	}

	if k, ok := extKinds[strings.ToLower(filepath.Ext(path))]; ok {
		return k, nil
	}
	return KindUnknown, &AssetError{Path: path, Err: ErrUnsupported}
}

// Supported reports whether the extension names a known media format.
func Supported(path string) bool {
	_, ok := extKinds[strings.ToLower(filepath.Ext(path))]
	return ok
}

package source

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// PDF renders document pages as album photos.
type PDF struct {
	doc  *fitz.Document
	path string
}

func OpenPDF(path string) (*PDF, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, assetError(path, err)
	}
	return &PDF{doc: doc, path: path}, nil
}

func (p *PDF) PageCount() int {
	return p.doc.NumPage()
}

// RenderPage uses a private document handle so that pages can be rendered
// from several goroutines.
func (p *PDF) RenderPage(index int, dpi int) (image.Image, error) {
	workerDoc, err := fitz.New(p.path)
	if err != nil {
		return nil, assetError(p.path, err)
	}
	defer workerDoc.Close()

	img, err := workerDoc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, assetError(p.path, err)
	}
	return img, nil
}

func (p *PDF) Close() error {
	return p.doc.Close()
}

// Package text measures and lays out caption strings.
package text

import (
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/ivlev/zoomalbum/internal/movie"
)

// Metrics measures a string drawn at a given glyph height in pixels.
type Metrics interface {
	Measure(s string, height float64) (advance, ascent float64)
}

// Renderer measures with an OpenType font, or with the built-in 7x13
// bitmap face when no font is configured.
type Renderer struct {
	name string
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

const basicName = "basic7x13"

var newFace = opentype.NewFace

// Load reads a TTF/OTF file. An empty path selects the built-in face.
func Load(path string) (*Renderer, error) {
	r := &Renderer{name: basicName, faces: map[float64]font.Face{}}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	r.name = path
	r.font = f
	return r, nil
}

// Name identifies the font in rendered text specs.
func (r *Renderer) Name() string {
	return r.name
}

// Measure falls back to the built-in face, with a warning, when the font
// cannot be instantiated at height.
func (r *Renderer) Measure(s string, height float64) (advance, ascent float64) {
	if r.font == nil {
		return measureBasic(s, height)
	}

	face, err := r.face(height)
	if err != nil {
		log.Printf("[!] Font %s at %.1fpx: %v, measuring with %s", r.name, height, err, basicName)
		return measureBasic(s, height)
	}
	adv := font.MeasureString(face, s)
	return float64(adv) / 64, float64(face.Metrics().Ascent) / 64
}

func measureBasic(s string, height float64) (advance, ascent float64) {
	face := basicfont.Face7x13
	scale := height / float64(face.Height)
	adv := font.MeasureString(face, s)
	return float64(adv) / 64 * scale, float64(face.Ascent) * scale
}

func (r *Renderer) face(height float64) (font.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.faces[height]; ok {
		return f, nil
	}
	f, err := newFace(r.font, &opentype.FaceOptions{
		Size:    height,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	r.faces[height] = f
	return f, nil
}

// Render lays out s as a text character spec.
func (r *Renderer) Render(s string, height float64, color movie.Color) movie.TextSpec {
	advance, ascent := r.Measure(s, height)
	return movie.TextSpec{
		Text:    s,
		Font:    r.name,
		Height:  height,
		Advance: advance,
		Ascent:  ascent,
		Color:   color,
	}
}

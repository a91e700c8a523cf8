package movie

import (
	"encoding/base64"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// FormatVersion is bumped whenever File changes incompatibly.
const FormatVersion = 1

// File is the serialized document.
type File struct {
	Version    int               `yaml:"version"`
	FrameRate  int               `yaml:"frame_rate"`
	Width      float64           `yaml:"width"`
	Height     float64           `yaml:"height"`
	Background Color             `yaml:"background"`
	Characters []CharacterRecord `yaml:"characters"`
	Timeline   []Frame           `yaml:"timeline"`
}

type CharacterRecord struct {
	ID      int           `yaml:"id"`
	Kind    Kind          `yaml:"kind"`
	Shape   *ShapeSpec    `yaml:"shape,omitempty"`
	Text    *TextSpec     `yaml:"text,omitempty"`
	Bitmap  *BitmapRecord `yaml:"bitmap,omitempty"`
	Frames  []Frame       `yaml:"frames,omitempty"`
	Regions []Region      `yaml:"regions,omitempty"`
	Actions []Action      `yaml:"actions,omitempty"`
}

type BitmapRecord struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Data   Blob   `yaml:"data"`
}

// Blob is raw bytes stored as a !!binary scalar.
type Blob []byte

func (b Blob) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!binary",
		Value: base64.StdEncoding.EncodeToString(b),
	}, nil
}

func (b *Blob) UnmarshalYAML(node *yaml.Node) error {
	data, err := base64.StdEncoding.DecodeString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*b = data
	return nil
}

// Finalize writes the document to path. Bitmap bytes are read from their
// sources here, which must still be open.
func (d *Document) Finalize(path string, opts Options) error {
	f, err := d.File(opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// File builds the serializable form of the document, flushing any
// unfinished frame of every clip.
func (d *Document) File(opts Options) (*File, error) {
	d.root.flush()

	f := &File{
		Version:    FormatVersion,
		FrameRate:  opts.FrameRate,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: opts.Background,
		Timeline:   d.root.Frames(),
	}

	for _, ch := range d.chars {
		rec := CharacterRecord{ID: ch.ID(), Kind: ch.Kind()}
		switch c := ch.(type) {
		case *shapeChar:
			spec := c.spec
			rec.Shape = &spec
		case *textChar:
			spec := c.spec
			rec.Text = &spec
		case *bitmapChar:
			data, err := c.src.ReadAll()
			if err != nil {
				return nil, fmt.Errorf("bitmap %s: %w", c.src.Path(), err)
			}
			w, h := c.src.Size()
			rec.Bitmap = &BitmapRecord{Path: c.src.Path(), Width: w, Height: h, Data: data}
		case *TimelineClip:
			c.flush()
			rec.Frames = c.Frames()
		case *ButtonChar:
			rec.Regions = c.Regions()
			rec.Actions = c.Actions()
		}
		f.Characters = append(f.Characters, rec)
	}

	return f, nil
}

// ReadFile reads a document written by Finalize.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("%s: unsupported format version %d", path, f.Version)
	}
	return &f, nil
}

// Character returns the record with the given id, or nil.
func (f *File) Character(id int) *CharacterRecord {
	for i := range f.Characters {
		if f.Characters[i].ID == id {
			return &f.Characters[i]
		}
	}
	return nil
}

// Outline is the label structure of a timeline.
type Outline struct {
	Frames int
	Labels map[string]int
}

func OutlineOf(frames []Frame) Outline {
	o := Outline{Frames: len(frames), Labels: map[string]int{}}
	for i, fr := range frames {
		if fr.Label != "" {
			o.Labels[fr.Label] = i + 1
		}
	}
	return o
}

func (o Outline) String() string {
	names := make([]string, 0, len(o.Labels))
	for name := range o.Labels {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return o.Labels[names[i]] < o.Labels[names[j]] })

	s := fmt.Sprintf("%d frames", o.Frames)
	for _, name := range names {
		s += fmt.Sprintf(" %s@%d", name, o.Labels[name])
	}
	return s
}

// Outlines summarizes every clip of the file by character id.
func (f *File) Outlines() map[int]Outline {
	out := map[int]Outline{0: OutlineOf(f.Timeline)}
	for _, c := range f.Characters {
		if c.Kind == KindClip {
			out[c.ID] = OutlineOf(c.Frames)
		}
	}
	return out
}

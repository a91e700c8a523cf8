// Package movie is the authoring sink for album documents: characters,
// clips with frame-by-frame display lists, buttons with event actions.
package movie

import "fmt"

type Kind string

const (
	KindShape  Kind = "shape"
	KindBitmap Kind = "bitmap"
	KindText   Kind = "text"
	KindClip   Kind = "clip"
	KindButton Kind = "button"
)

// Character is anything that can be placed on a clip.
type Character interface {
	ID() int
	Kind() Kind
}

// Event triggers a bound action in the output runtime.
type Event string

const (
	EventLoad     Event = "load"
	EventRelease  Event = "release"
	EventRollOver Event = "rollOver"
	EventRollOut  Event = "rollOut"
)

// KeyPress is the event fired by a key with the given runtime key code.
func KeyPress(code int) Event {
	return Event(fmt.Sprintf("keyPress:%d", code))
}

type RegionState string

const (
	RegionUp   RegionState = "up"
	RegionOver RegionState = "over"
	RegionDown RegionState = "down"
	RegionHit  RegionState = "hit"
)

// Fill paints a shape with a solid color or a bitmap character.
type Fill struct {
	Color  *Color `yaml:"color,omitempty"`
	Bitmap int    `yaml:"bitmap,omitempty"`
}

type Stroke struct {
	Width uint16 `yaml:"width"`
	Color Color  `yaml:"color"`
}

// ShapeSpec is an axis-aligned rectangle anchored at its top-left corner.
type ShapeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Fill   *Fill   `yaml:"fill,omitempty"`
	Stroke *Stroke `yaml:"stroke,omitempty"`
}

// TextSpec is a single line of text; Ascent is measured from its top.
type TextSpec struct {
	Text    string  `yaml:"text"`
	Font    string  `yaml:"font,omitempty"`
	Height  float64 `yaml:"height"`
	Advance float64 `yaml:"advance"`
	Ascent  float64 `yaml:"ascent"`
	Color   Color   `yaml:"color"`
}

// BitmapSource is an image held open by its owner. Bytes are read when
// the document is finalized, so the source must stay open until then.
type BitmapSource interface {
	Path() string
	Size() (width, height int)
	ReadAll() ([]byte, error)
}

// DisplayItem is a placed character. Changes apply to the clip's current
// frame.
type DisplayItem interface {
	ScaleTo(sx, sy float64)
	MoveTo(x, y float64)
	Move(dx, dy float64)
	SetAlpha(a float64)
	SetName(name string)
	BindAction(ev Event, code string)
	Depth() int
}

// Clip is a timeline of frames. Each NextFrame closes the current frame.
type Clip interface {
	Character
	Add(c Character) DisplayItem
	Remove(item DisplayItem)
	NextFrame()
	LabelFrame(label string)
	AddScript(code string)
	FrameCount() int
}

type Button interface {
	Character
	AddRegion(shape Character, state RegionState)
	BindAction(ev Event, code string)
}

// Options are document-wide settings applied at finalization.
type Options struct {
	FrameRate  int
	Width      float64
	Height     float64
	Background Color
}

// Sink creates characters and writes the finished document.
type Sink interface {
	NewShape(spec ShapeSpec) Character
	NewBitmap(src BitmapSource) Character
	NewText(spec TextSpec) Character
	NewClip() Clip
	NewButton() Button
	Root() Clip
	Finalize(path string, opts Options) error
}

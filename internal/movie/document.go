package movie

// Document is the in-memory Sink. Characters are numbered from 1 in
// creation order; the root clip is character 0.
type Document struct {
	chars []Character
	root  *TimelineClip
}

func NewDocument() *Document {
	return &Document{root: &TimelineClip{id: 0}}
}

type shapeChar struct {
	id   int
	spec ShapeSpec
}

func (s *shapeChar) ID() int    { return s.id }
func (s *shapeChar) Kind() Kind { return KindShape }

type bitmapChar struct {
	id  int
	src BitmapSource
}

func (b *bitmapChar) ID() int    { return b.id }
func (b *bitmapChar) Kind() Kind { return KindBitmap }

type textChar struct {
	id   int
	spec TextSpec
}

func (t *textChar) ID() int    { return t.id }
func (t *textChar) Kind() Kind { return KindText }

func (d *Document) nextID() int {
	return len(d.chars) + 1
}

func (d *Document) NewShape(spec ShapeSpec) Character {
	c := &shapeChar{id: d.nextID(), spec: spec}
	d.chars = append(d.chars, c)
	return c
}

func (d *Document) NewBitmap(src BitmapSource) Character {
	c := &bitmapChar{id: d.nextID(), src: src}
	d.chars = append(d.chars, c)
	return c
}

func (d *Document) NewText(spec TextSpec) Character {
	c := &textChar{id: d.nextID(), spec: spec}
	d.chars = append(d.chars, c)
	return c
}

func (d *Document) NewClip() Clip {
	c := &TimelineClip{id: d.nextID()}
	d.chars = append(d.chars, c)
	return c
}

func (d *Document) NewButton() Button {
	b := &ButtonChar{id: d.nextID()}
	d.chars = append(d.chars, b)
	return b
}

func (d *Document) Root() Clip {
	return d.root
}

// Characters returns every character except the root clip.
func (d *Document) Characters() []Character {
	return append([]Character(nil), d.chars...)
}

// ButtonChar is the Document's Button.
type ButtonChar struct {
	id      int
	regions []Region
	actions []Action
}

type Region struct {
	Character int         `yaml:"character"`
	State     RegionState `yaml:"state"`
}

type Action struct {
	Event Event  `yaml:"event"`
	Code  string `yaml:"code"`
}

func (b *ButtonChar) ID() int    { return b.id }
func (b *ButtonChar) Kind() Kind { return KindButton }

func (b *ButtonChar) AddRegion(shape Character, state RegionState) {
	b.regions = append(b.regions, Region{Character: shape.ID(), State: state})
}

func (b *ButtonChar) BindAction(ev Event, code string) {
	b.actions = append(b.actions, Action{Event: ev, Code: code})
}

// Actions returns the bound actions in binding order.
func (b *ButtonChar) Actions() []Action {
	return append([]Action(nil), b.actions...)
}

func (b *ButtonChar) Regions() []Region {
	return append([]Region(nil), b.regions...)
}

package movie

type OpKind string

const (
	OpPlace  OpKind = "place"
	OpModify OpKind = "modify"
	OpRemove OpKind = "remove"
)

// Transform is scale then translate, in the parent clip's coordinates.
type Transform struct {
	ScaleX float64 `yaml:"sx"`
	ScaleY float64 `yaml:"sy"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

var identity = Transform{ScaleX: 1, ScaleY: 1}

// Op is one display list change at a depth.
type Op struct {
	Kind      OpKind     `yaml:"op"`
	Depth     int        `yaml:"depth"`
	Character int        `yaml:"character,omitempty"`
	Name      string     `yaml:"name,omitempty"`
	Transform *Transform `yaml:"transform,omitempty"`
	Alpha     *float64   `yaml:"alpha,omitempty"`
	Actions   []Action   `yaml:"actions,omitempty"`
}

type Frame struct {
	Label   string   `yaml:"label,omitempty"`
	Scripts []string `yaml:"scripts,omitempty"`
	Ops     []Op     `yaml:"ops,omitempty"`
}

func (f Frame) empty() bool {
	return f.Label == "" && len(f.Scripts) == 0 && len(f.Ops) == 0
}

// TimelineClip is the Document's Clip.
type TimelineClip struct {
	id      int
	frames  []Frame
	pending Frame
	depth   int
}

func (c *TimelineClip) ID() int    { return c.id }
func (c *TimelineClip) Kind() Kind { return KindClip }

func (c *TimelineClip) Add(ch Character) DisplayItem {
	c.depth++
	c.pending.Ops = append(c.pending.Ops, Op{Kind: OpPlace, Depth: c.depth, Character: ch.ID()})
	return &displayItem{clip: c, depth: c.depth, t: identity}
}

func (c *TimelineClip) Remove(item DisplayItem) {
	if it, ok := item.(*displayItem); ok {
		it.removed = true
	}
	c.pending.Ops = append(c.pending.Ops, Op{Kind: OpRemove, Depth: item.Depth()})
}

func (c *TimelineClip) NextFrame() {
	c.frames = append(c.frames, c.pending)
	c.pending = Frame{}
}

func (c *TimelineClip) LabelFrame(label string) {
	c.pending.Label = label
}

func (c *TimelineClip) AddScript(code string) {
	c.pending.Scripts = append(c.pending.Scripts, code)
}

// FrameCount is the number of closed frames.
func (c *TimelineClip) FrameCount() int {
	return len(c.frames)
}

// Frames returns the closed frames; index 0 is runtime frame 1.
func (c *TimelineClip) Frames() []Frame {
	return append([]Frame(nil), c.frames...)
}

// Label returns the 1-based frame number carrying label, or 0.
func (c *TimelineClip) Label(label string) int {
	return labelFrame(c.frames, label)
}

func (c *TimelineClip) flush() {
	if !c.pending.empty() {
		c.NextFrame()
	}
}

func labelFrame(frames []Frame, label string) int {
	for i, f := range frames {
		if f.Label == label {
			return i + 1
		}
	}
	return 0
}

type displayItem struct {
	clip    *TimelineClip
	depth   int
	t       Transform
	removed bool
}

// op returns the index of the pending op that carries this item's state,
// appending a modify op when the current frame has none yet.
func (it *displayItem) op() int {
	ops := it.clip.pending.Ops
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Depth == it.depth && ops[i].Kind != OpRemove {
			return i
		}
	}
	it.clip.pending.Ops = append(ops, Op{Kind: OpModify, Depth: it.depth})
	return len(it.clip.pending.Ops) - 1
}

func (it *displayItem) setTransform() {
	if it.removed {
		return
	}
	t := it.t
	it.clip.pending.Ops[it.op()].Transform = &t
}

func (it *displayItem) ScaleTo(sx, sy float64) {
	it.t.ScaleX, it.t.ScaleY = sx, sy
	it.setTransform()
}

func (it *displayItem) MoveTo(x, y float64) {
	it.t.X, it.t.Y = x, y
	it.setTransform()
}

func (it *displayItem) Move(dx, dy float64) {
	it.t.X += dx
	it.t.Y += dy
	it.setTransform()
}

func (it *displayItem) SetAlpha(a float64) {
	if it.removed {
		return
	}
	it.clip.pending.Ops[it.op()].Alpha = &a
}

func (it *displayItem) SetName(name string) {
	if it.removed {
		return
	}
	it.clip.pending.Ops[it.op()].Name = name
}

func (it *displayItem) BindAction(ev Event, code string) {
	if it.removed {
		return
	}
	i := it.op()
	it.clip.pending.Ops[i].Actions = append(it.clip.pending.Ops[i].Actions, Action{Event: ev, Code: code})
}

func (it *displayItem) Depth() int {
	return it.depth
}

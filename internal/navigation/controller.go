package navigation

import (
	"fmt"

	"github.com/ivlev/zoomalbum/internal/movie"
	"github.com/ivlev/zoomalbum/internal/script"
)

// Controller wires navigation into a document for a grid of Count photos
// laid out in Columns columns.
type Controller struct {
	Columns  int
	Count    int
	State    State
	bindings []Binding
}

func NewController(columns, count int) *Controller {
	return &Controller{
		Columns:  columns,
		Count:    count,
		State:    NewState(),
		bindings: Bindings(columns),
	}
}

func (c *Controller) Bindings() []Binding {
	return append([]Binding(nil), c.bindings...)
}

// Install declares the navigation state and a key listener on the root
// timeline's current frame.
func (c *Controller) Install(sink movie.Sink) movie.Button {
	root := sink.Root()
	root.AddScript(c.State.Script())

	keys := sink.NewButton()
	for _, b := range c.bindings {
		keys.BindAction(movie.KeyPress(b.Key.Code), c.action(b))
	}
	root.Add(keys)
	return keys
}

func (c *Controller) action(b Binding) string {
	if b.Open {
		return script.OpenCurrent()
	}
	return script.Navigate(b.Delta, c.Count)
}

// Press simulates a key against s.
func (c *Controller) Press(s State, k Key) (State, error) {
	for _, b := range c.bindings {
		if b.Key != k {
			continue
		}
		if b.Open {
			return s, nil
		}
		return s.Navigate(b.Delta, c.Count), nil
	}
	return s, fmt.Errorf("key %q is not bound", k.Name)
}

// HoverActions returns the pointer enter and leave code for photo index.
func (c *Controller) HoverActions(index int) (enter, leave string) {
	return script.Activate(index), script.Deactivate(index)
}

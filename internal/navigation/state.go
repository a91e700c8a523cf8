// Package navigation holds the runtime "current photo" state of an album
// and the key bindings that move it.
package navigation

import "github.com/ivlev/zoomalbum/internal/script"

// State is the navigation state of the output runtime. It is written into
// the document as initialization code; the Go methods mirror what the
// emitted handlers do so that the logic can be checked without a player.
type State struct {
	CurrentActive   int
	FirstActivation bool
}

func NewState() State {
	return State{CurrentActive: 0, FirstActivation: true}
}

// Navigate applies a directional move among count photos. The first move
// always lands on photo 0. Moves leaving [0, count) are ignored.
func (s State) Navigate(delta, count int) State {
	if s.FirstActivation {
		return State{CurrentActive: 0, FirstActivation: false}
	}
	next := s.CurrentActive + delta
	if next >= 0 && next < count {
		s.CurrentActive = next
	}
	return s
}

// Activate is a pointer hover over photo index.
func (s State) Activate(index int) State {
	return State{CurrentActive: index, FirstActivation: false}
}

// Script is the initialization code declaring s on the root timeline.
func (s State) Script() string {
	return script.InitNavigation(s.CurrentActive, s.FirstActivation)
}

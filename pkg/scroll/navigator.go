package scroll

import "fmt"

// Scroller issues scroll commands to the viewport.
type Scroller interface {
	ScrollTo(offset float64, smooth bool)
}

// Dot is one navigation indicator.
type Dot struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Navigator renders one dot per section and turns dot clicks into scroll
// commands. It reads the tracker but never writes to it: the scroll event
// that follows a click is what moves the active index.
type Navigator struct {
	tracker  *Tracker
	scroller Scroller
}

// NewNavigator creates a Navigator.
func NewNavigator(tracker *Tracker, scroller Scroller) *Navigator {
	return &Navigator{tracker: tracker, scroller: scroller}
}

// Dots returns the indicators with exactly one marked active.
func (n *Navigator) Dots() []Dot {
	sections := n.tracker.Registry().Sections()
	active := n.tracker.State().ActiveIndex
	dots := make([]Dot, len(sections))
	for i, s := range sections {
		dots[i] = Dot{Index: i, Name: s.Name, Active: i == active}
	}
	return dots
}

// Click smooth-scrolls to section i.
func (n *Navigator) Click(i int) error {
	s, ok := n.tracker.Registry().Section(i)
	if !ok {
		return fmt.Errorf("navigation dot %d out of range", i)
	}
	if !s.Measured {
		return fmt.Errorf("section %q has not been measured", s.Name)
	}
	n.scroller.ScrollTo(s.Position, true)
	return nil
}

package scroll

import (
	"slices"
	"sync"
)

// activationRatio is the fraction of the viewport a section's top may sit
// below the scroll offset and still count as reached.
const activationRatio = 3.0

// Viewport is one observation of the scrolling container.
type Viewport struct {
	ScrollOffset   float64
	ViewportHeight float64
	// ScrollHeight is the full content height; the scrollable range is
	// [0, ScrollHeight-ViewportHeight].
	ScrollHeight float64
}

// State is the tracker's derived view of the scroll position.
type State struct {
	ActiveIndex int     `json:"activeIndex"`
	Fraction    float64 `json:"fraction"`
}

// ActiveIndex returns the greatest index whose measured position satisfies
// position - viewportHeight/3 <= scrollOffset, or 0 when none does.
func ActiveIndex(sections []Section, scrollOffset, viewportHeight float64) int {
	active := 0
	threshold := viewportHeight / activationRatio
	for i, s := range sections {
		if !s.Measured {
			continue
		}
		if s.Position-threshold <= scrollOffset {
			active = i
		}
	}
	return active
}

// Fraction maps offset onto [0,1] across the range [start,end].
func Fraction(offset, start, end float64) float64 {
	if end <= start {
		return 0
	}
	f := (offset - start) / (end - start)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Tracker owns the ScrollState of one page mount and notifies subscribers
// as it changes.
type Tracker struct {
	registry *Registry

	mu       sync.Mutex
	state    State
	observed bool
	nextID   int
	onActive map[int]func(int)
	onScroll map[int]func(State)
}

// NewTracker creates a tracker over registry. The initial state is index 0,
// fraction 0; call Observe once at mount to establish the real state.
func NewTracker(registry *Registry) *Tracker {
	return &Tracker{
		registry: registry,
		onActive: make(map[int]func(int)),
		onScroll: make(map[int]func(State)),
	}
}

// Registry returns the section registry the tracker reads.
func (t *Tracker) Registry() *Registry {
	return t.registry
}

// State returns the current scroll state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Observe recomputes the state from v. Active-index subscribers are called
// on the first observation and then only when the index changes; scroll
// subscribers whenever the state does. It reports whether the active index
// changed.
func (t *Tracker) Observe(v Viewport) bool {
	next := State{
		ActiveIndex: ActiveIndex(t.registry.Sections(), v.ScrollOffset, v.ViewportHeight),
		Fraction:    Fraction(v.ScrollOffset, 0, v.ScrollHeight-v.ViewportHeight),
	}

	t.mu.Lock()
	prev := t.state
	first := !t.observed
	t.state = next
	t.observed = true
	activeSubs := snapshot(t.onActive)
	scrollSubs := snapshot(t.onScroll)
	t.mu.Unlock()

	changed := next.ActiveIndex != prev.ActiveIndex
	if first || changed {
		for _, fn := range activeSubs {
			fn(next.ActiveIndex)
		}
	}
	if first || next != prev {
		for _, fn := range scrollSubs {
			fn(next)
		}
	}
	return changed
}

// OnActiveChange registers fn for active-index changes. The returned func unsubscribes.
func (t *Tracker) OnActiveChange(fn func(int)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.onActive[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.onActive, id)
	}
}

// OnScroll registers fn for every state change. The returned func unsubscribes.
func (t *Tracker) OnScroll(fn func(State)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.onScroll[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.onScroll, id)
	}
}

// snapshot copies subscribers in registration order so callbacks run without the lock held.
func snapshot[F any](subs map[int]F) []F {
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]F, len(ids))
	for i, id := range ids {
		out[i] = subs[id]
	}
	return out
}

// Package scroll tracks which page section is in view and how far the page
// has been scrolled. It has no DOM dependency: the browser client feeds it
// measurements and scroll offsets.
package scroll

import "sync"

// Section is a named, vertically positioned region of the page.
// Position is measured in pixels from the scroll origin; a section that has
// not been measured yet never counts as reached.
type Section struct {
	Name     string  `json:"name"`
	Position float64 `json:"position"`
	Measured bool    `json:"measured"`
}

// Registry is the ordered list of page sections, top to bottom.
type Registry struct {
	mu       sync.RWMutex
	sections []Section
}

// NewRegistry creates a registry from section names in visual order.
func NewRegistry(names ...string) *Registry {
	sections := make([]Section, len(names))
	for i, n := range names {
		sections[i] = Section{Name: n}
	}
	return &Registry{sections: sections}
}

// Measure records the scroll position of section i. Out-of-range indexes are ignored.
func (r *Registry) Measure(i int, position float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.sections) {
		return
	}
	r.sections[i].Position = position
	r.sections[i].Measured = true
}

// Sections returns a copy of the registered sections.
func (r *Registry) Sections() []Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Section returns section i.
func (r *Registry) Section(i int) (Section, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.sections) {
		return Section{}, false
	}
	return r.sections[i], true
}

// Len returns the number of sections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sections)
}

// Index returns the position of the named section.
func (r *Registry) Index(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, s := range r.sections {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Package faq holds FAQ content and the accordion state that decides which
// answer is expanded.
package faq

import "sync"

// Entry is one question with its answer. Answers are Markdown.
type Entry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// none marks a fully collapsed accordion.
const none = -1

// Accordion tracks the single open entry. The zero value is not usable; use
// NewAccordion.
type Accordion struct {
	mu   sync.Mutex
	open int
}

// NewAccordion returns an accordion with every entry collapsed.
func NewAccordion() *Accordion {
	return &Accordion{open: none}
}

// Toggle opens entry i, closing whichever was open, or collapses i if it
// was already open. It returns the resulting open index.
func (a *Accordion) Toggle(i int) (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.open == i {
		a.open = none
	} else {
		a.open = i
	}
	return a.open, a.open != none
}

// OpenIndex returns the open entry, if any.
func (a *Accordion) OpenIndex() (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open, a.open != none
}

// IsOpen reports whether entry i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open != none && a.open == i
}

// Close collapses every entry.
func (a *Accordion) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.open = none
}

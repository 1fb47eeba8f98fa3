package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccordion_StartsCollapsed(t *testing.T) {
	a := NewAccordion()
	_, ok := a.OpenIndex()
	assert.False(t, ok)
	for i := 0; i < 5; i++ {
		assert.False(t, a.IsOpen(i))
	}
}

func TestAccordion_ToggleTwiceRestores(t *testing.T) {
	// Holds when the accordion starts collapsed or with the toggled entry open.
	for _, start := range []int{-1, 2} {
		a := NewAccordion()
		if start >= 0 {
			a.Toggle(start)
		}
		before, beforeOK := a.OpenIndex()

		a.Toggle(2)
		a.Toggle(2)

		after, afterOK := a.OpenIndex()
		assert.Equal(t, beforeOK, afterOK, "start=%d", start)
		if beforeOK {
			assert.Equal(t, before, after, "start=%d", start)
		}
	}
}

func TestAccordion_ToggleOpenEntryCloses(t *testing.T) {
	a := NewAccordion()
	i, ok := a.Toggle(1)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = a.Toggle(1)
	assert.False(t, ok)
	assert.False(t, a.IsOpen(1))
}

func TestAccordion_OpeningAnotherClosesPrevious(t *testing.T) {
	a := NewAccordion()
	a.Toggle(0)
	a.Toggle(4)

	assert.False(t, a.IsOpen(0))
	assert.True(t, a.IsOpen(4))
	open, ok := a.OpenIndex()
	assert.True(t, ok)
	assert.Equal(t, 4, open)
}

func TestAccordion_Close(t *testing.T) {
	a := NewAccordion()
	a.Toggle(3)
	a.Close()
	_, ok := a.OpenIndex()
	assert.False(t, ok)
}

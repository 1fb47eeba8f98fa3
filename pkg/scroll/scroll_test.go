package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viewport = 900.0

// measuredRegistry lays out full-screen sections one viewport apart.
func measuredRegistry(names ...string) *Registry {
	r := NewRegistry(names...)
	for i := range names {
		r.Measure(i, float64(i)*viewport)
	}
	return r
}

func TestActiveIndex(t *testing.T) {
	sections := measuredRegistry("hero", "reserve", "about", "features", "faq").Sections()

	tests := []struct {
		name   string
		offset float64
		want   int
	}{
		{"top of page", 0, 0},
		{"just before threshold", 599, 0},
		{"at threshold", 600, 1},
		{"inside second", 1000, 1},
		{"third section reached", 1500, 2},
		{"bottom", 4 * viewport, 4},
		{"past bottom", 10000, 4},
		{"negative overscroll", -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveIndex(sections, tt.offset, viewport))
		})
	}
}

func TestActiveIndex_SkipsUnmeasured(t *testing.T) {
	r := NewRegistry("hero", "reserve", "about")
	r.Measure(0, 0)
	r.Measure(2, 1800)

	assert.Equal(t, 0, ActiveIndex(r.Sections(), 1000, viewport), "unmeasured section must not qualify")
	assert.Equal(t, 2, ActiveIndex(r.Sections(), 1500, viewport))
	assert.Equal(t, 0, ActiveIndex(NewRegistry("a", "b").Sections(), 5000, viewport))
}

func TestActiveIndex_Monotonic(t *testing.T) {
	sections := measuredRegistry("hero", "reserve", "about", "features", "battle", "ranking", "faq").Sections()

	prev := ActiveIndex(sections, -100, viewport)
	for s := -100.0; s <= 7*viewport; s += 7 {
		got := ActiveIndex(sections, s, viewport)
		require.GreaterOrEqual(t, got, prev, "active index decreased at offset %.0f", s)
		prev = got
	}
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, Fraction(-10, 0, 1000))
	assert.Equal(t, 0.0, Fraction(0, 0, 1000))
	assert.Equal(t, 0.25, Fraction(250, 0, 1000))
	assert.Equal(t, 1.0, Fraction(1000, 0, 1000))
	assert.Equal(t, 1.0, Fraction(1200, 0, 1000))
	assert.Equal(t, 0.5, Fraction(150, 100, 200))
	assert.Equal(t, 0.0, Fraction(50, 100, 100), "empty range")
}

func TestTracker_NotifiesOnlyOnChange(t *testing.T) {
	tracker := NewTracker(measuredRegistry("hero", "reserve", "about"))

	var actives []int
	var scrolls []State
	tracker.OnActiveChange(func(i int) { actives = append(actives, i) })
	tracker.OnScroll(func(s State) { scrolls = append(scrolls, s) })

	height := 3 * viewport
	tracker.Observe(Viewport{ScrollOffset: 0, ViewportHeight: viewport, ScrollHeight: height})
	tracker.Observe(Viewport{ScrollOffset: 100, ViewportHeight: viewport, ScrollHeight: height})
	tracker.Observe(Viewport{ScrollOffset: 200, ViewportHeight: viewport, ScrollHeight: height})
	changed := tracker.Observe(Viewport{ScrollOffset: 700, ViewportHeight: viewport, ScrollHeight: height})
	tracker.Observe(Viewport{ScrollOffset: 700, ViewportHeight: viewport, ScrollHeight: height})

	assert.True(t, changed)
	assert.Equal(t, []int{0, 1}, actives, "initial state plus one real change")
	assert.Len(t, scrolls, 4, "identical observation must not notify")
	assert.Equal(t, State{ActiveIndex: 1, Fraction: 700 / (2 * viewport)}, tracker.State())
}

func TestTracker_Unsubscribe(t *testing.T) {
	tracker := NewTracker(measuredRegistry("hero", "reserve"))
	calls := 0
	unsubscribe := tracker.OnActiveChange(func(int) { calls++ })

	tracker.Observe(Viewport{ScrollOffset: 0, ViewportHeight: viewport, ScrollHeight: 2 * viewport})
	unsubscribe()
	tracker.Observe(Viewport{ScrollOffset: viewport, ViewportHeight: viewport, ScrollHeight: 2 * viewport})

	assert.Equal(t, 1, calls)
}

type fakeScroller struct {
	tracker *Tracker
	height  float64
	calls   []float64
}

// ScrollTo settles immediately and emits the resulting scroll event.
func (f *fakeScroller) ScrollTo(offset float64, smooth bool) {
	f.calls = append(f.calls, offset)
	f.tracker.Observe(Viewport{ScrollOffset: offset, ViewportHeight: viewport, ScrollHeight: f.height})
}

func TestNavigator_ClickThenSettle(t *testing.T) {
	names := []string{"hero", "reserve", "about", "features", "faq"}
	tracker := NewTracker(measuredRegistry(names...))
	scroller := &fakeScroller{tracker: tracker, height: float64(len(names)) * viewport}
	nav := NewNavigator(tracker, scroller)
	tracker.Observe(Viewport{ScrollOffset: 0, ViewportHeight: viewport, ScrollHeight: scroller.height})

	for _, i := range []int{3, 1, 4, 0, 2} {
		require.NoError(t, nav.Click(i))
		assert.Equal(t, i, tracker.State().ActiveIndex)

		active := 0
		for _, d := range nav.Dots() {
			if d.Active {
				active++
				assert.Equal(t, i, d.Index)
				assert.Equal(t, names[i], d.Name)
			}
		}
		assert.Equal(t, 1, active, "exactly one dot highlighted")
	}
}

type recordingScroller struct{ calls []float64 }

func (r *recordingScroller) ScrollTo(offset float64, smooth bool) { r.calls = append(r.calls, offset) }

func TestNavigator_ClickDoesNotMutateState(t *testing.T) {
	tracker := NewTracker(measuredRegistry("hero", "reserve", "about"))
	scroller := &recordingScroller{}
	nav := NewNavigator(tracker, scroller)

	require.NoError(t, nav.Click(2))
	assert.Equal(t, []float64{2 * viewport}, scroller.calls)
	assert.Equal(t, 0, tracker.State().ActiveIndex)
}

func TestNavigator_ClickErrors(t *testing.T) {
	r := NewRegistry("hero", "reserve")
	r.Measure(0, 0)
	nav := NewNavigator(NewTracker(r), &recordingScroller{})

	assert.Error(t, nav.Click(5))
	assert.Error(t, nav.Click(-1))
	assert.Error(t, nav.Click(1), "unmeasured section")
}

func TestRegistry_Index(t *testing.T) {
	r := NewRegistry("hero", "faq")
	i, ok := r.Index("faq")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = r.Index("pricing")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestSpring_ConvergesWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name   string
		from   float64
		target float64
		frame  time.Duration
	}{
		{"scroll down at 60fps", 0, 1, time.Second / 60},
		{"scroll up at 60fps", 0.9, 0.25, time.Second / 60},
		{"dropped frames", 0, 1, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProgressSpring()
			s.SetTarget(tt.from)
			for !s.AtRest() {
				s.Step(time.Second)
			}
			require.Equal(t, tt.from, s.Value())

			s.SetTarget(tt.target)
			prev := s.Value()
			rest := false
			for frame := 0; frame < 600 && !rest; frame++ {
				var v float64
				v, rest = s.Step(tt.frame)
				if tt.target > tt.from {
					require.GreaterOrEqual(t, v, prev)
					require.LessOrEqual(t, v, tt.target)
				} else {
					require.LessOrEqual(t, v, prev)
					require.GreaterOrEqual(t, v, tt.target)
				}
				prev = v
			}
			assert.True(t, rest, "spring never settled")
			assert.Equal(t, tt.target, s.Value())
		})
	}
}

func TestSpring_AtRestIsStable(t *testing.T) {
	s := NewProgressSpring()
	v, rest := s.Step(time.Second / 60)
	assert.True(t, rest)
	assert.Equal(t, 0.0, v)
}

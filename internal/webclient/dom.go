//go:build js && wasm

package webclient

import (
	"strconv"
	"syscall/js"
)

// listener is an event handler attached to a DOM target.
type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

func (l listener) remove() {
	l.target.Call("removeEventListener", l.event, l.fn)
	l.fn.Release()
}

func queryAll(root js.Value, selector string) []js.Value {
	list := root.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]js.Value, n)
	for i := 0; i < n; i++ {
		out[i] = list.Index(i)
	}
	return out
}

// intAttr parses a numeric data attribute, returning -1 when it is missing
// or malformed.
func intAttr(el js.Value, name string) int {
	v := el.Call("getAttribute", name)
	if v.IsNull() {
		return -1
	}
	i, err := strconv.Atoi(v.String())
	if err != nil {
		return -1
	}
	return i
}

func setAttr(el js.Value, name, value string) {
	el.Call("setAttribute", name, value)
}

func toggleClass(el js.Value, class string, on bool) {
	el.Get("classList").Call("toggle", class, on)
}

// windowScroller scrolls the document viewport.
type windowScroller struct {
	win js.Value
}

func (w windowScroller) ScrollTo(offset float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	opts := js.Global().Get("Object").New()
	opts.Set("top", offset)
	opts.Set("behavior", behavior)
	w.win.Call("scrollTo", opts)
}

//go:build js && wasm

// Package webclient binds the server-rendered landing page to the scroll
// tracker, the progress spring, the FAQ accordion and the pre-registration
// form. It runs in the browser as WebAssembly.
package webclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"syscall/js"
	"time"

	"github.com/comdbstn/fashionking/pkg/faq"
	"github.com/comdbstn/fashionking/pkg/logger"
	"github.com/comdbstn/fashionking/pkg/prereg"
	"github.com/comdbstn/fashionking/pkg/scroll"
)

// submitTimeout bounds one API round trip from the browser.
const submitTimeout = 30 * time.Second

// Client is one mount of the landing page.
type Client struct {
	log *slog.Logger
	win js.Value
	doc js.Value

	registry  *scroll.Registry
	tracker   *scroll.Tracker
	navigator *scroll.Navigator
	spring    *scroll.Spring
	accordion *faq.Accordion
	form      *prereg.Form

	sections []js.Value
	dots     []js.Value
	progress js.Value

	listeners []listener
	unsub     []func()

	frame     js.Func
	frameID   js.Value
	animating bool
	lastFrame float64
}

// Mount finds the page's sections, dots, progress bar, FAQ and form and
// starts tracking the scroll position.
func Mount(log *slog.Logger) (*Client, error) {
	win := js.Global()
	doc := win.Get("document")

	c := &Client{
		log:       log.With(logger.Scope("webclient")),
		win:       win,
		doc:       doc,
		spring:    scroll.NewProgressSpring(),
		accordion: faq.NewAccordion(),
		progress:  doc.Call("querySelector", "[data-progress]"),
	}

	c.sections = queryAll(doc, "[data-section]")
	if len(c.sections) == 0 {
		return nil, errors.New("no [data-section] elements on the page")
	}
	names := make([]string, len(c.sections))
	for i, el := range c.sections {
		names[i] = el.Call("getAttribute", "data-section").String()
	}

	c.registry = scroll.NewRegistry(names...)
	c.tracker = scroll.NewTracker(c.registry)
	c.navigator = scroll.NewNavigator(c.tracker, windowScroller{win: win})

	c.unsub = append(c.unsub,
		c.tracker.OnActiveChange(c.renderDots),
		c.tracker.OnScroll(func(s scroll.State) {
			c.spring.SetTarget(s.Fraction)
			c.animate()
		}),
	)

	c.frame = js.FuncOf(func(_ js.Value, args []js.Value) any {
		c.step(args[0].Float())
		return nil
	})

	c.bindDots()
	c.bindFAQ()
	if err := c.bindForm(); err != nil {
		c.log.Warn("pre-registration form not bound", logger.Error(err))
	}

	passive := js.Global().Get("Object").New()
	passive.Set("passive", true)
	c.on(win, "scroll", func(js.Value) { c.observe() }, passive)
	c.on(win, "resize", func(js.Value) {
		c.measure()
		c.observe()
	}, passive)

	c.measure()
	c.observe()

	c.log.Debug("landing client mounted", slog.Int("sections", len(c.sections)))
	return c, nil
}

// Release detaches every listener and subscription.
func (c *Client) Release() {
	for _, u := range c.unsub {
		u()
	}
	c.unsub = nil
	for _, l := range c.listeners {
		l.remove()
	}
	c.listeners = nil
	if c.animating {
		c.win.Call("cancelAnimationFrame", c.frameID)
		c.animating = false
	}
	c.frame.Release()
}

func (c *Client) on(target js.Value, event string, fn func(js.Value), opts ...any) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", append([]any{event, f}, opts...)...)
	c.listeners = append(c.listeners, listener{target: target, event: event, fn: f})
}

// measure records each section's top relative to the scroll origin.
func (c *Client) measure() {
	scrollY := c.win.Get("scrollY").Float()
	for i, el := range c.sections {
		top := el.Call("getBoundingClientRect").Get("top").Float()
		c.registry.Measure(i, top+scrollY)
	}
}

func (c *Client) observe() {
	c.tracker.Observe(scroll.Viewport{
		ScrollOffset:   c.win.Get("scrollY").Float(),
		ViewportHeight: c.win.Get("innerHeight").Float(),
		ScrollHeight:   c.doc.Get("documentElement").Get("scrollHeight").Float(),
	})
}

func (c *Client) bindDots() {
	c.dots = queryAll(c.doc, "[data-dot]")
	for _, el := range c.dots {
		i := intAttr(el, "data-dot")
		c.on(el, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			if err := c.navigator.Click(i); err != nil {
				c.log.Debug("navigation dot ignored", logger.Error(err))
			}
		})
	}
}

func (c *Client) renderDots(active int) {
	for _, el := range c.dots {
		on := intAttr(el, "data-dot") == active
		toggleClass(el, "active", on)
		if on {
			setAttr(el, "aria-current", "true")
		} else {
			el.Call("removeAttribute", "aria-current")
		}
	}
}

// animate starts the frame loop if the spring is not already being driven.
func (c *Client) animate() {
	if c.animating {
		return
	}
	c.animating = true
	c.lastFrame = 0
	c.frameID = c.win.Call("requestAnimationFrame", c.frame)
}

func (c *Client) step(now float64) {
	dt := time.Duration(0)
	if c.lastFrame > 0 {
		dt = time.Duration((now - c.lastFrame) * float64(time.Millisecond))
	}
	c.lastFrame = now

	value, rest := c.spring.Step(dt)
	c.renderProgress(value)

	if rest {
		c.animating = false
		return
	}
	c.frameID = c.win.Call("requestAnimationFrame", c.frame)
}

func (c *Client) renderProgress(value float64) {
	if c.progress.IsNull() {
		return
	}
	c.progress.Get("style").Set("transform", fmt.Sprintf("scaleX(%.4f)", value))
	setAttr(c.progress, "aria-valuenow", strconv.Itoa(int(value*100+0.5)))
}

func (c *Client) bindFAQ() {
	for _, el := range queryAll(c.doc, "[data-faq-index]") {
		i := intAttr(el, "data-faq-index")
		c.on(el, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			c.accordion.Toggle(i)
			c.renderFAQ()
		})
	}
}

func (c *Client) renderFAQ() {
	for _, el := range queryAll(c.doc, "[data-faq-index]") {
		open := c.accordion.IsOpen(intAttr(el, "data-faq-index"))
		setAttr(el, "aria-expanded", strconv.FormatBool(open))
		toggleClass(el.Get("parentElement"), "open", open)
	}
	for _, el := range queryAll(c.doc, "[data-faq-panel]") {
		if c.accordion.IsOpen(intAttr(el, "data-faq-panel")) {
			el.Call("removeAttribute", "hidden")
		} else {
			setAttr(el, "hidden", "")
		}
	}
}

func (c *Client) bindForm() error {
	el := c.doc.Call("querySelector", "[data-prereg-form]")
	if el.IsNull() {
		return errors.New("no [data-prereg-form] element")
	}

	origin := c.win.Get("location").Get("origin").String()
	c.form = prereg.NewForm(prereg.NewClient(origin, nil))

	c.on(el, "submit", func(ev js.Value) {
		ev.Call("preventDefault")
		if c.form.Phase() == prereg.PhaseSubmitting {
			return
		}
		data := readForm(el)
		c.form.Fill(data)

		// Submit blocks on the network; a js.Func callback must not.
		go func() {
			if prereg.Validate(data) == nil {
				c.renderForm(el, prereg.SubmitStatus{IsSubmitting: true}, nil)
			}

			ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
			defer cancel()
			err := c.form.Submit(ctx)
			switch {
			case errors.Is(err, prereg.ErrSubmitInProgress):
				return
			case err != nil && !errors.Is(err, prereg.ErrValidation):
				c.log.Warn("pre-registration failed", logger.Error(err))
			}

			after := c.form.Data()
			c.renderForm(el, c.form.Status(), &after)
		}()
	})
	return nil
}

func readForm(el js.Value) prereg.FormData {
	value := func(name string) string {
		input := el.Call("querySelector", "[name="+name+"]")
		if input.IsNull() {
			return ""
		}
		return input.Get("value").String()
	}
	agreement := el.Call("querySelector", "[name=agreement]")
	return prereg.FormData{
		Name:              value("name"),
		Phone:             value("phone"),
		Email:             value("email"),
		AgreementAccepted: !agreement.IsNull() && agreement.Get("checked").Bool(),
	}
}

// renderForm reflects status in the form. When data is non-nil the inputs
// are reset to it.
func (c *Client) renderForm(el js.Value, status prereg.SubmitStatus, data *prereg.FormData) {
	button := el.Call("querySelector", "[data-submit]")
	if !button.IsNull() {
		button.Set("disabled", status.IsSubmitting)
		button.Set("textContent", prereg.ButtonLabel(status))
	}

	msg := el.Call("querySelector", "[data-form-status]")
	if !msg.IsNull() {
		msg.Set("textContent", status.Message)
		toggleClass(msg, "success", status.Message != "" && status.IsSuccess)
		toggleClass(msg, "error", status.Message != "" && !status.IsSuccess)
	}

	if data == nil {
		return
	}
	for name, v := range map[string]string{"name": data.Name, "phone": data.Phone, "email": data.Email} {
		if input := el.Call("querySelector", "[name="+name+"]"); !input.IsNull() {
			input.Set("value", v)
		}
	}
	if box := el.Call("querySelector", "[name=agreement]"); !box.IsNull() {
		box.Set("checked", data.AgreementAccepted)
	}
}

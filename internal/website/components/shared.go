package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SectionLink names a page section and its navigation label.
type SectionLink struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Card is an icon, title and short description.
type Card struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

func Logo() g.Node {
	return Span(
		Class("logo"),
		g.Text("FASHIONKING"),
		Span(Class("logo-sub"), g.Text("패션왕")),
	)
}

func Icon(name, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify icon"),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class("iconify icon"),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// pageSection wraps a section so the browser client can find and measure it.
func pageSection(id string, index int, class string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Class("page-section "+class),
		g.Attr("data-section", id),
		g.Attr("data-section-index", strconv.Itoa(index)),
		g.Group(children),
	)
}

func sectionHeading(eyebrow, title, lead string) g.Node {
	return Div(
		Class("section-heading"),
		g.If(eyebrow != "", P(Class("eyebrow"), g.Text(eyebrow))),
		H2(g.Text(title)),
		g.If(lead != "", P(Class("lead"), g.Text(lead))),
	)
}

func cardGrid(cards []Card) g.Node {
	return Div(
		Class("card-grid"),
		g.Group(g.Map(cards, func(c Card) g.Node {
			return Div(
				Class("card"),
				Icon(c.Icon, ""),
				H3(g.Text(c.Title)),
				P(g.Text(c.Description)),
			)
		})),
	)
}

// lines renders text split over explicit line breaks.
func lines(parts ...string) g.Node {
	nodes := make([]g.Node, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(p))
	}
	return g.Group(nodes)
}

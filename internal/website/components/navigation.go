package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Navbar(sections []SectionLink) g.Node {
	return Header(
		Class("navbar"),
		Nav(
			Class("navbar-inner"),
			A(Href("#hero"), Logo()),
			Ul(
				Class("navbar-links"),
				g.Group(g.Map(sections, func(s SectionLink) g.Node {
					return Li(A(Href("#"+s.ID), g.Text(s.Label)))
				})),
			),
			A(Href("#reserve"), Class("btn btn-primary btn-sm"), g.Text("사전예약")),
		),
	)
}

// ProgressBar is scaled horizontally by the browser client as the page scrolls.
func ProgressBar() g.Node {
	return Div(
		Class("progress-bar"),
		g.Attr("data-progress", ""),
		g.Attr("role", "progressbar"),
		g.Attr("aria-label", "페이지 진행률"),
		g.Attr("aria-valuemin", "0"),
		g.Attr("aria-valuemax", "100"),
		g.Attr("aria-valuenow", "0"),
		StyleAttr("transform: scaleX(0)"),
	)
}

// NavDots renders one dot per section with exactly one marked active.
// Without scripting each dot is a plain anchor link.
func NavDots(sections []SectionLink, active int) g.Node {
	dots := make([]g.Node, 0, len(sections))
	for i, s := range sections {
		class := "nav-dot"
		if i == active {
			class += " active"
		}
		dots = append(dots, Li(
			A(
				Href("#"+s.ID),
				Class(class),
				g.If(i == active, g.Attr("aria-current", "true")),
				g.Attr("data-dot", strconv.Itoa(i)),
				g.Attr("aria-label", s.Label),
				Span(Class("nav-dot-label"), g.Text(s.Label)),
			),
		))
	}

	return Nav(
		Class("nav-dots"),
		g.Attr("aria-label", "섹션 이동"),
		Ul(g.Group(dots)),
	)
}

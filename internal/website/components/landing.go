package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Page is everything the landing page needs to render.
type Page struct {
	Config   PageConfig
	Sections []SectionLink
	About    []Card
	Features []Card
	FAQ      []FAQItem
	// OpenFAQ is the expanded FAQ entry, -1 for none.
	OpenFAQ int
	Form    FormView
	Version string
}

func (p Page) index(id string) int {
	for i, s := range p.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func Landing(p Page) g.Node {
	return Layout(p.Config,
		ProgressBar(),
		Navbar(p.Sections),
		NavDots(p.Sections, 0),
		Main(
			Class("landing"),
			Hero(p.index("hero")),
			Reserve(p.index("reserve"), p.Form),
			About(p.index("about"), p.About),
			Features(p.index("features"), p.Features),
			Battle(p.index("battle")),
			Ranking(p.index("ranking")),
			FAQ(p.index("faq"), p.FAQ, p.OpenFAQ),
		),
		PageFooter(p.Version),
	)
}

package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FAQItem is a question with its pre-rendered HTML answer.
type FAQItem struct {
	Question   string
	AnswerHTML string
}

// faqHref is the no-script toggle link: it opens entry i, or collapses the
// accordion when i is already open.
func faqHref(i, open int) string {
	if i == open {
		return "/#faq"
	}
	return fmt.Sprintf("/?faq=%d#faq", i)
}

// FAQ renders the accordion with entry open expanded (-1 for none).
func FAQ(index int, items []FAQItem, open int) g.Node {
	entries := make([]g.Node, 0, len(items))
	for i, item := range items {
		isOpen := i == open
		panelID := "faq-panel-" + strconv.Itoa(i)
		class := "faq-item"
		if isOpen {
			class += " open"
		}

		entries = append(entries, Div(
			Class(class),
			A(
				Href(faqHref(i, open)),
				Class("faq-question"),
				g.Attr("data-faq-index", strconv.Itoa(i)),
				g.Attr("aria-controls", panelID),
				g.Attr("aria-expanded", strconv.FormatBool(isOpen)),
				Span(g.Text(item.Question)),
				Icon("lucide:chevron-down", ""),
			),
			Div(
				ID(panelID),
				Class("faq-answer"),
				g.Attr("data-faq-panel", strconv.Itoa(i)),
				g.If(!isOpen, g.Attr("hidden")),
				g.Raw(item.AnswerHTML),
			),
		))
	}

	return pageSection("faq", index, "faq",
		Div(
			Class("container narrow"),
			sectionHeading("FAQ", "자주 묻는 질문", ""),
			Div(Class("faq-list"), g.Group(entries)),
		),
	)
}

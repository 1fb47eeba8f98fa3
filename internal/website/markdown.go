package website

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/comdbstn/fashionking/internal/website/components"
	"github.com/comdbstn/fashionking/pkg/faq"
)

// md renders FAQ answers. Raw HTML in the source is dropped.
var md = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// renderFAQ converts the Markdown answers to HTML once at startup.
func renderFAQ(entries []faq.Entry) ([]components.FAQItem, error) {
	items := make([]components.FAQItem, 0, len(entries))
	for i, e := range entries {
		var buf bytes.Buffer
		if err := md.Convert([]byte(e.Answer), &buf); err != nil {
			return nil, fmt.Errorf("render faq answer %d: %w", i, err)
		}
		items = append(items, components.FAQItem{Question: e.Question, AnswerHTML: buf.String()})
	}
	return items, nil
}

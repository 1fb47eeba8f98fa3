package website

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comdbstn/fashionking/internal/website/components"
	"github.com/comdbstn/fashionking/pkg/faq"
)

//go:embed content.yaml
var contentYAML []byte

// Content is the landing page copy.
type Content struct {
	Sections []components.SectionLink `yaml:"sections"`
	About    []components.Card        `yaml:"about"`
	Features []components.Card        `yaml:"features"`
	FAQ      []faq.Entry              `yaml:"faq"`
}

// LoadContent parses the embedded page copy.
func LoadContent() (*Content, error) {
	return parseContent(contentYAML)
}

func parseContent(data []byte) (*Content, error) {
	c := &Content{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse page content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("page content: %w", err)
	}
	return c, nil
}

func (c *Content) validate() error {
	if len(c.Sections) == 0 {
		return errors.New("no sections")
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" || s.Label == "" {
			return fmt.Errorf("section %d needs an id and a label", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section %q", s.ID)
		}
		seen[s.ID] = true
	}
	for i, e := range c.FAQ {
		if e.Question == "" || e.Answer == "" {
			return fmt.Errorf("faq entry %d needs a question and an answer", i)
		}
	}
	return nil
}

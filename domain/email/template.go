package email

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/comdbstn/fashionking/pkg/logger"
)

//go:embed templates/*.hbs
var templateFS embed.FS

// Template parts. Each template id has one file per part:
// <id>.subject.hbs, <id>.txt.hbs and optionally <id>.html.hbs.
const (
	partSubject = "subject"
	partText    = "txt"
	partHTML    = "html"
)

// TemplateService renders Handlebars email templates compiled into the binary.
type TemplateService struct {
	log *slog.Logger

	// templates is keyed by id then part; read-only after construction
	templates map[string]map[string]*raymond.Template
}

// TemplateRenderResult contains the rendered email content
type TemplateRenderResult struct {
	Subject string
	HTML    string
	Text    string
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]interface{}

// NewTemplateService parses the embedded templates.
func NewTemplateService(log *slog.Logger) (*TemplateService, error) {
	return NewTemplateServiceFS(templateFS, "templates", log)
}

// NewTemplateServiceFS parses every *.hbs file under dir in fsys.
func NewTemplateServiceFS(fsys fs.FS, dir string, log *slog.Logger) (*TemplateService, error) {
	ts := &TemplateService{
		log:       log.With(logger.Scope("email.template")),
		templates: make(map[string]map[string]*raymond.Template),
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hbs") {
			continue
		}
		id, part, ok := splitTemplateName(entry.Name())
		if !ok {
			ts.log.Warn("ignoring template with unknown part", slog.String("file", entry.Name()))
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", entry.Name(), err)
		}
		tmpl, err := raymond.Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}

		if ts.templates[id] == nil {
			ts.templates[id] = make(map[string]*raymond.Template)
		}
		ts.templates[id][part] = tmpl
	}

	ts.log.Info("loaded embedded email templates", slog.Int("templates", len(ts.templates)))
	return ts, nil
}

// splitTemplateName turns "prereg_operator.subject.hbs" into ("prereg_operator", "subject").
func splitTemplateName(name string) (id, part string, ok bool) {
	base := strings.TrimSuffix(name, ".hbs")
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return "", "", false
	}
	id, part = base[:i], base[i+1:]
	switch part {
	case partSubject, partText, partHTML:
		return id, part, true
	}
	return "", "", false
}

// HasTemplate reports whether a template id can be rendered.
func (ts *TemplateService) HasTemplate(id string) bool {
	parts := ts.templates[id]
	return parts[partSubject] != nil && parts[partText] != nil
}

// ListTemplates returns all template ids in lexical order.
func (ts *TemplateService) ListTemplates() []string {
	return slices.Sorted(maps.Keys(ts.templates))
}

// Render renders the subject, text and HTML parts of a template.
func (ts *TemplateService) Render(id string, context TemplateContext) (*TemplateRenderResult, error) {
	parts, ok := ts.templates[id]
	if !ok || parts[partSubject] == nil || parts[partText] == nil {
		return nil, fmt.Errorf("template not found: %s", id)
	}

	var result TemplateRenderResult
	var err error

	if result.Subject, err = parts[partSubject].Exec(context); err != nil {
		return nil, fmt.Errorf("failed to render template %s subject: %w", id, err)
	}
	result.Subject = strings.TrimSpace(result.Subject)

	if result.Text, err = parts[partText].Exec(context); err != nil {
		return nil, fmt.Errorf("failed to render template %s text: %w", id, err)
	}

	if html := parts[partHTML]; html != nil {
		if result.HTML, err = html.Exec(context); err != nil {
			return nil, fmt.Errorf("failed to render template %s html: %w", id, err)
		}
	}

	return &result, nil
}

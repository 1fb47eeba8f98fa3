// Package website serves the landing page, its static assets and the
// browser client build.
package website

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/internal/version"
	"github.com/comdbstn/fashionking/internal/website/components"
	"github.com/comdbstn/fashionking/pkg/faq"
	"github.com/comdbstn/fashionking/pkg/logger"
	"github.com/comdbstn/fashionking/pkg/prereg"
)

// Registrar accepts a pre-registration. *preregistration.Service satisfies it.
type Registrar interface {
	Register(ctx context.Context, data prereg.FormData) (prereg.Response, error)
}

// Handler renders the landing page.
type Handler struct {
	registrar Registrar
	log       *slog.Logger
	page      components.Page
}

// NewHandler loads the page copy, renders the FAQ answers once and prepares
// the page template.
func NewHandler(cfg *config.Config, registrar Registrar, log *slog.Logger) (*Handler, error) {
	content, err := LoadContent()
	if err != nil {
		return nil, err
	}
	items, err := renderFAQ(content.FAQ)
	if err != nil {
		return nil, err
	}

	return &Handler{
		registrar: registrar,
		log:       log.With(logger.Scope("website")),
		page: components.Page{
			Config:   components.PageConfig{URL: cfg.PublicURL},
			Sections: content.Sections,
			About:    content.About,
			Features: content.Features,
			FAQ:      items,
			OpenFAQ:  -1,
			Version:  version.Current().Version,
		},
	}, nil
}

// openFAQ resolves the ?faq= query through an accordion so an out of range
// or malformed index leaves every entry collapsed.
func (h *Handler) openFAQ(raw string) int {
	acc := faq.NewAccordion()
	if i, err := strconv.Atoi(raw); err == nil && i >= 0 && i < len(h.page.FAQ) {
		acc.Toggle(i)
	}
	open, _ := acc.OpenIndex()
	return open
}

func (h *Handler) render(c echo.Context, status int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	c.Response().WriteHeader(status)
	return node.Render(c.Response())
}

// Landing renders the page with an empty form.
func (h *Handler) Landing(c echo.Context) error {
	p := h.page
	p.OpenFAQ = h.openFAQ(c.QueryParam("faq"))
	return h.render(c, http.StatusOK, components.Landing(p))
}

// Preregister handles the form when it is posted without scripting. The
// page is re-rendered with the outcome; entered values survive everything
// but a successful submission.
func (h *Handler) Preregister(c echo.Context) error {
	data := prereg.FormData{
		Name:              c.FormValue("name"),
		Phone:             c.FormValue("phone"),
		Email:             c.FormValue("email"),
		AgreementAccepted: c.FormValue("agreement") != "",
	}

	resp, err := h.registrar.Register(c.Request().Context(), data)

	status := http.StatusOK
	view := components.FormView{Status: resp.Status}
	if err != nil {
		view.Data = data
		status = statusFor(err)
		h.log.Debug("form submission not accepted",
			slog.String("submission_id", resp.ID),
			logger.Error(err))
	}

	p := h.page
	p.Form = view
	return h.render(c, status, components.Landing(p))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, prereg.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, prereg.ErrSubmitInProgress):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

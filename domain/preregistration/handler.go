package preregistration

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comdbstn/fashionking/pkg/apperror"
	"github.com/comdbstn/fashionking/pkg/prereg"
)

var (
	errValidation       = apperror.ErrValidation.WithMessage(prereg.ValidationMessage)
	errSubmitInProgress = apperror.New(http.StatusConflict, "submit_in_progress", "A submission is already in progress")
	errSubmissionFailed = apperror.New(http.StatusBadGateway, "submission_failed", prereg.FailureMessage)
)

// Handler handles HTTP requests for pre-registrations
type Handler struct {
	svc *Service
}

// NewHandler creates a new pre-registration handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create accepts a pre-registration
// @Summary      Submit a pre-registration
// @Description  Validates the form and delivers it to the configured collaborators
// @Tags         preregistrations
// @Accept       json
// @Produce      json
// @Param        request body prereg.FormData true "Form values"
// @Success      200 {object} prereg.Response "Delivered"
// @Failure      422 {object} apperror.Error "Required field missing or agreement not accepted"
// @Failure      429 {object} apperror.Error "Too many submissions from this client"
// @Failure      502 {object} apperror.Error "A collaborator failed"
// @Router       /api/preregistrations [post]
func (h *Handler) Create(c echo.Context) error {
	var req prereg.FormData
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	resp, err := h.svc.Register(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, resp)
	case errors.Is(err, prereg.ErrValidation):
		return errValidation.WithDetails(map[string]any{
			"missing": prereg.MissingFields(req),
		})
	case errors.Is(err, prereg.ErrSubmitInProgress):
		return errSubmitInProgress
	default:
		return errSubmissionFailed.WithInternal(err)
	}
}

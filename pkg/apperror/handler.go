package apperror

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// statusCodes maps plain echo errors onto the error codes clients see.
var statusCodes = map[int]string{
	http.StatusBadRequest:          "bad_request",
	http.StatusNotFound:            "not_found",
	http.StatusMethodNotAllowed:    "method_not_allowed",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "validation_error",
	http.StatusTooManyRequests:     "rate_limited",
}

// HTTPErrorHandler returns the echo error handler that renders every failure
// as {"error":{"code":...,"message":...}}.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		appErr := toAppError(err)

		if appErr.HTTPStatus >= 500 {
			log.Error("request error",
				slog.Int("status", appErr.HTTPStatus),
				slog.String("path", c.Request().URL.Path),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(appErr.HTTPStatus)
			return
		}
		_ = c.JSON(appErr.HTTPStatus, appErr.Body())
	}
}

func toAppError(err error) *Error {
	if appErr, ok := As(err); ok {
		return appErr
	}

	if he, ok := err.(*echo.HTTPError); ok {
		code, known := statusCodes[he.Code]
		if !known {
			code = "internal_error"
			if he.Code < 500 {
				code = "error"
			}
		}
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		return New(he.Code, code, msg)
	}

	return ErrInternal
}

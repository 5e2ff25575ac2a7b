package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/book-review/frontend/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// HTTPErrorHandler answers in plain text, with the not found page for
// unknown routes.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
		if he.Internal != nil {
			err = he.Internal
		}
	}
	if code >= http.StatusInternalServerError {
		msg = http.StatusText(http.StatusInternalServerError)
		h.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	switch {
	case c.Request().Method == http.MethodHead:
		err = c.NoContent(code)
	case code == http.StatusNotFound:
		err = c.Render(code, view.NotFoundPage, nil)
	default:
		err = c.String(code, msg)
	}
	if err != nil {
		h.log.Warn("write error response", zap.Error(err))
	}
}

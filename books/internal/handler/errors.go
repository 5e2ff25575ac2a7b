package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/book-review/books/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// HTTPErrorHandler writes every error as {"error": msg}. Server errors get a
// generic message and the cause only goes to the log.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			msg = fmt.Sprint(he.Message)
		}
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

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errs.ErrorResponse{Error: msg})
	}
	if err != nil {
		h.log.Warn("write error response", zap.Error(err))
	}
}

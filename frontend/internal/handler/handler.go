package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Astemirdum/book-review/frontend/internal/errs"
	"github.com/Astemirdum/book-review/frontend/internal/model"
	"github.com/Astemirdum/book-review/frontend/internal/view"
	md "github.com/Astemirdum/book-review/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	backendSvc BackendService
	renderer   echo.Renderer
	metrics    *md.Metrics
	log        *zap.Logger
}

func New(backendSvc BackendService, renderer echo.Renderer, log *zap.Logger) *Handler {
	return &Handler{
		backendSvc: backendSvc,
		renderer:   renderer,
		metrics:    md.NewMetrics("frontend", nil),
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const baseRPS = 10
	e.HideBanner = true
	e.Renderer = h.renderer
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Use(md.Recover())
	e.Use(md.CORS())

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", h.metrics.Handler())
	e.StaticFS("/static", view.Static())

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		h.metrics.Middleware(),
	)
	h.Register(api)

	return e
}

// Register adds the page and form routes to g.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/", h.Index)
	g.GET("/add", h.AddForm)
	g.POST("/add", h.Add)
	g.GET("/search", h.Search)
	g.GET("/avaliations/:id", h.Avaliation)
	g.POST("/delete/:id", h.Delete)
	g.GET("/edit/:id", h.EditForm)
	g.POST("/edit/:id", h.Edit)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Index renders the list, or an empty list when the backend fails.
func (h *Handler) Index(c echo.Context) error {
	books, _, err := h.backendSvc.ListBooks(c.Request().Context())
	if err != nil {
		h.log.Error("list books", zap.Error(err))
		books = nil
	}
	return c.Render(http.StatusOK, view.IndexPage, view.Index{Avaliations: books})
}

func (h *Handler) AddForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.AddPage, view.Add{Failed: c.QueryParam("error") == "true"})
}

func (h *Handler) Add(c echo.Context) error {
	const failed = "/add?error=true"

	var form model.AddForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, failed)
	}
	title := strings.TrimSpace(form.Title)
	note, err := parseNote(form.Note)
	if title == "" || err != nil {
		return c.Redirect(http.StatusFound, failed)
	}
	req := model.CreateBookRequest{
		Title:      title,
		Note:       note,
		Avaliation: form.Avaliation,
	}
	if cover := strings.TrimSpace(form.BookCover); cover != "" {
		req.BookCover = &cover
	}

	if _, _, err := h.backendSvc.CreateBook(c.Request().Context(), req); err != nil {
		h.log.Error("create book", zap.String("title", title), zap.Error(err))
		return c.Redirect(http.StatusFound, failed)
	}
	return c.Redirect(http.StatusFound, "/")
}

// Search relays the backend answer with its status.
func (h *Handler) Search(c echo.Context) error {
	data, code, err := h.backendSvc.Search(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		h.log.Error("search books", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errs.ErrorResponse{Error: errs.ErrSearch.Error()})
	}
	return c.JSONBlob(code, data)
}

func (h *Handler) Avaliation(c echo.Context) error {
	return h.renderBook(c, view.AvaliationPage, "Error fetching book evaluation")
}

func (h *Handler) EditForm(c echo.Context) error {
	return h.renderBook(c, view.EditPage, "Error fetching book evaluation for edit")
}

func (h *Handler) renderBook(c echo.Context, page, failure string) error {
	book, _, err := h.backendSvc.GetBook(c.Request().Context(), c.Param("id"))
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return c.Render(http.StatusNotFound, view.NotFoundPage, nil)
	case err != nil:
		h.log.Error("get book", zap.String("id", c.Param("id")), zap.Error(err))
		return c.String(http.StatusInternalServerError, failure)
	}
	return c.Render(http.StatusOK, page, view.Avaliation{Avaliation: book, Error: c.QueryParam("error")})
}

func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.backendSvc.DeleteBook(c.Request().Context(), id); err != nil {
		h.log.Error("delete book", zap.String("id", id), zap.Error(err))
		return c.Redirect(http.StatusFound, avaliationPath(id)+"?error=delete_failed")
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Edit(c echo.Context) error {
	id := c.Param("id")
	failed := "/edit/" + url.PathEscape(id) + "?error=update_failed"

	var form model.EditForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, failed)
	}
	note, err := parseNote(form.Note)
	if err != nil {
		return c.Redirect(http.StatusFound, failed)
	}

	req := model.UpdateBookRequest{Note: note, Avaliation: form.Avaliation}
	if _, _, err := h.backendSvc.UpdateBook(c.Request().Context(), id, req); err != nil {
		h.log.Error("update book", zap.String("id", id), zap.Error(err))
		return c.Redirect(http.StatusFound, failed)
	}
	return c.Redirect(http.StatusFound, avaliationPath(id))
}

func avaliationPath(id string) string {
	return "/avaliations/" + url.PathEscape(id)
}

func parseNote(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

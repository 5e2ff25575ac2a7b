package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/book-review/books/internal/errs"
	"github.com/Astemirdum/book-review/books/internal/model"
	_ "github.com/Astemirdum/book-review/books/swagger"
	md "github.com/Astemirdum/book-review/pkg/middleware"
	"github.com/Astemirdum/book-review/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	bookSvc BookService
	metrics *md.Metrics
	log     *zap.Logger
}

func New(bookSvc BookService, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc: bookSvc,
		metrics: md.NewMetrics("books", nil),
		log:     log.Named("handler"),
	}
}

// NewRouter serves the evaluation API at the root path.
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const baseRPS = 10
	e.HideBanner = true
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Validator = validate.NewCustomValidator()
	e.Use(md.Recover())
	e.Use(md.CORS())

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", h.metrics.Handler())
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		h.metrics.Middleware(),
	)
	api.GET("/search", h.Search)
	api.POST("/add", h.Create)
	api.GET("/", h.ListAll)
	api.GET("/:id", h.GetByID)
	api.PATCH("/update/:id", h.Update)
	api.DELETE("/delete/:id", h.Delete)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Search godoc
// @Summary Search books by title in the metadata provider
// @Produce json
// @Param title query string true "book title"
// @Success 200 {array} model.SearchResult
// @Failure 400 {object} errs.ErrorResponse
// @Failure 500 {object} errs.ErrorResponse
// @Router /search [get]
func (h *Handler) Search(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrTitleRequired.Error())
	}
	books, err := h.bookSvc.Search(c.Request().Context(), title)
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// Create godoc
// @Summary Add a book evaluation
// @Accept json
// @Produce json
// @Param request body model.CreateBookRequest true "evaluation"
// @Success 201 {object} model.Book
// @Failure 400 {object} errs.ErrorResponse
// @Failure 500 {object} errs.ErrorResponse
// @Router /add [post]
func (h *Handler) Create(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.Create(c.Request().Context(), req)
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// ListAll godoc
// @Summary List all book evaluations
// @Produce json
// @Success 200 {array} model.Book
// @Failure 500 {object} errs.ErrorResponse
// @Router / [get]
func (h *Handler) ListAll(c echo.Context) error {
	books, err := h.bookSvc.ListAll(c.Request().Context())
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetByID godoc
// @Summary Get a book evaluation
// @Produce json
// @Param id path int true "evaluation id"
// @Success 200 {object} model.Book
// @Failure 404 {object} errs.ErrorResponse
// @Router /{id} [get]
func (h *Handler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// Update godoc
// @Summary Update note and avaliation of a book evaluation
// @Accept json
// @Produce json
// @Param id path int true "evaluation id"
// @Param request body model.UpdateBookRequest true "new note and avaliation"
// @Success 200 {object} model.Book
// @Failure 400 {object} errs.ErrorResponse
// @Failure 404 {object} errs.ErrorResponse
// @Router /update/{id} [patch]
func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.Update(c.Request().Context(), id, req)
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// Delete godoc
// @Summary Delete a book evaluation
// @Produce json
// @Param id path int true "evaluation id"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} errs.ErrorResponse
// @Router /delete/{id} [delete]
func (h *Handler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.bookSvc.Delete(c.Request().Context(), id); err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Avaliation deleted successfully"})
}

// pathID treats an id that is not an int4 as an unknown one.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return int(id), nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	case errors.Is(err, errs.ErrTitleRequired):
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrTitleRequired.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}

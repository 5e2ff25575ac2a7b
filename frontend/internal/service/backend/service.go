package backend

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Astemirdum/book-review/frontend/config"
	"github.com/Astemirdum/book-review/frontend/internal/errs"
	"github.com/Astemirdum/book-review/frontend/internal/model"
	"github.com/Astemirdum/book-review/pkg/circuit_breaker"
	"github.com/go-resty/resty/v2"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Service talks to the books backend over its JSON API.
type Service struct {
	log    *zap.Logger
	client *resty.Client
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Backend) *Service {
	log = log.Named("backend")
	return &Service{
		log: log,
		client: resty.New().
			SetBaseURL(strings.TrimRight(cfg.URL, "/")).
			SetTimeout(cfg.Timeout).
			SetHeader(echo.HeaderAccept, echo.MIMEApplicationJSON).
			SetLogger(log.Sugar()),
		cb: circuit_breaker.New(20, 10*time.Second, 0.5, 2,
			circuit_breaker.WithFailurePredicate(isBackendFailure)),
	}
}

// isBackendFailure ignores answers a healthy backend gives to bad input.
func isBackendFailure(err error) bool {
	return !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, errs.ErrBadRequest)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, int, error) {
	var books []model.Book
	code, err := s.do(s.client.R().SetContext(ctx).SetResult(&books), http.MethodGet, "/")
	if err != nil {
		return nil, code, err
	}
	return books, code, nil
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, int, error) {
	var book model.Book
	req := s.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&book)
	code, err := s.do(req, http.MethodGet, "/{id}")
	if err != nil {
		return model.Book{}, code, err
	}
	return book, code, nil
}

func (s *Service) CreateBook(ctx context.Context, in model.CreateBookRequest) (model.Book, int, error) {
	var book model.Book
	req := s.client.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&book)
	code, err := s.do(req, http.MethodPost, "/add")
	if err != nil {
		return model.Book{}, code, err
	}
	return book, code, nil
}

func (s *Service) UpdateBook(ctx context.Context, id string, in model.UpdateBookRequest) (model.Book, int, error) {
	var book model.Book
	req := s.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(in).
		SetResult(&book)
	code, err := s.do(req, http.MethodPatch, "/update/{id}")
	if err != nil {
		return model.Book{}, code, err
	}
	return book, code, nil
}

func (s *Service) DeleteBook(ctx context.Context, id string) (int, error) {
	req := s.client.R().
		SetContext(ctx).
		SetPathParam("id", id)
	return s.do(req, http.MethodDelete, "/delete/{id}")
}

// Search returns the backend search response as is, whatever its status.
// An error means no response was received.
func (s *Service) Search(ctx context.Context, title string) (data []byte, statusCode int, err error) {
	var received bool
	err = s.cb.Call(func() error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParam("title", title).
			Get("/search")
		if err != nil {
			return errors.Wrap(errs.ErrBackend, err.Error())
		}
		received = true
		data, statusCode = resp.Body(), resp.StatusCode()
		if statusCode >= http.StatusInternalServerError {
			return errors.Wrapf(errs.ErrBackend, "status %d", statusCode)
		}
		return nil
	})
	if received {
		return data, statusCode, nil
	}
	return nil, http.StatusServiceUnavailable, err
}

func (s *Service) do(req *resty.Request, method, path string) (int, error) {
	code := http.StatusServiceUnavailable
	err := s.cb.Call(func() error {
		resp, err := req.SetError(&errs.ErrorResponse{}).Execute(method, path)
		if err != nil {
			return errors.Wrap(errs.ErrBackend, err.Error())
		}
		code = resp.StatusCode()
		if resp.IsError() {
			return statusError(resp)
		}
		return nil
	})
	if err != nil {
		s.log.Debug("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("code", code),
			zap.Error(err))
	}
	return code, err
}

func statusError(resp *resty.Response) error {
	var msg string
	if e, ok := resp.Error().(*errs.ErrorResponse); ok {
		msg = e.Error
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return errors.Wrap(errs.ErrNotFound, msg)
	case resp.StatusCode() < http.StatusInternalServerError:
		return errors.Wrap(errs.ErrBadRequest, msg)
	default:
		return errors.Wrapf(errs.ErrBackend, "status %d: %s", resp.StatusCode(), msg)
	}
}

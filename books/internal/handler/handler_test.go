package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/book-review/books/internal/errs"
	"github.com/Astemirdum/book-review/books/internal/handler"
	service_mocks "github.com/Astemirdum/book-review/books/internal/handler/mocks"
	"github.com/Astemirdum/book-review/books/internal/model"
	"github.com/Astemirdum/book-review/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBehavior func(r *service_mocks.MockBookService)

type testCase struct {
	name         string
	method       string
	target       string
	body         string
	mockBehavior mockBehavior
	expectedCode int
	expectedBody string
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func newEcho(t *testing.T, svc handler.BookService) *echo.Echo {
	t.Helper()
	h := handler.New(svc, zap.NewNop())

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.GET("/search", h.Search)
	e.POST("/add", h.Create)
	e.GET("/", h.ListAll)
	e.GET("/:id", h.GetByID)
	e.PATCH("/update/:id", h.Update)
	e.DELETE("/delete/:id", h.Delete)
	return e
}

func runCases(t *testing.T, tests []testCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			tt.mockBehavior(svc)
			e := newEcho(t, svc)

			r := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()
	runCases(t, []testCase{
		{
			name:   "ok",
			method: http.MethodPost,
			target: "/add",
			body:   `{"title":"Dune","note":9,"avaliation":"Great","bookCover":"http://x/y.jpg"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Create(gomock.Any(), model.CreateBookRequest{
						Title:      "Dune",
						Note:       floatPtr(9),
						Avaliation: "Great",
						BookCover:  strPtr("http://x/y.jpg"),
					}).
					Return(model.Book{
						ID:         1,
						Title:      "Dune",
						Note:       9,
						Avaliation: "Great",
						BookCover:  strPtr("http://x/y.jpg"),
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"title":"Dune","note":9,"avaliation":"Great","book_cover":"http://x/y.jpg"}`,
		},
		{
			name:   "ok. no cover",
			method: http.MethodPost,
			target: "/add",
			body:   `{"title":"Dune","note":0}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Create(gomock.Any(), model.CreateBookRequest{Title: "Dune", Note: floatPtr(0)}).
					Return(model.Book{ID: 2, Title: "Dune"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":2,"title":"Dune","note":0,"avaliation":"","book_cover":null}`,
		},
		{
			name:         "err. malformed body",
			method:       http.MethodPost,
			target:       "/add",
			body:         `{"title":"Dune","note":"nine"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:         "err. title required",
			method:       http.MethodPost,
			target:       "/add",
			body:         `{"note":9}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Key: 'CreateBookRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag"}`,
		},
		{
			name:         "err. note out of range",
			method:       http.MethodPost,
			target:       "/add",
			body:         `{"title":"Dune","note":11}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Key: 'CreateBookRequest.Note' Error:Field validation for 'Note' failed on the 'max' tag"}`,
		},
		{
			name:   "err. internal",
			method: http.MethodPost,
			target: "/add",
			body:   `{"title":"Dune","note":9}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Book{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal Server Error"}`,
		},
	})
}

func TestHandler_Read(t *testing.T) {
	t.Parallel()
	runCases(t, []testCase{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().ListAll(gomock.Any()).Return([]model.Book{
					{ID: 1, Title: "Dune", Note: 9, Avaliation: "Great"},
					{ID: 2, Title: "Dune", Note: 7.5, Avaliation: "Again", BookCover: strPtr("http://x/y.jpg")},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"title":"Dune","note":9,"avaliation":"Great","book_cover":null},{"id":2,"title":"Dune","note":7.5,"avaliation":"Again","book_cover":"http://x/y.jpg"}]`,
		},
		{
			name:   "list. empty",
			method: http.MethodGet,
			target: "/",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().ListAll(gomock.Any()).Return([]model.Book{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/1",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetByID(gomock.Any(), 1).Return(model.Book{ID: 1, Title: "Dune", Note: 9, Avaliation: "Great"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"title":"Dune","note":9,"avaliation":"Great","book_cover":null}`,
		},
		{
			name:   "get. not found",
			method: http.MethodGet,
			target: "/404",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetByID(gomock.Any(), 404).Return(model.Book{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Avaliation not found"}`,
		},
		{
			name:         "get. non numeric id",
			method:       http.MethodGet,
			target:       "/abc",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Avaliation not found"}`,
		},
		{
			name:         "get. id out of int4 range",
			method:       http.MethodGet,
			target:       "/99999999999",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Avaliation not found"}`,
		},
	})
}

func TestHandler_Update(t *testing.T) {
	t.Parallel()
	runCases(t, []testCase{
		{
			name:   "ok",
			method: http.MethodPatch,
			target: "/update/1",
			body:   `{"note":4,"avaliation":"Dragged on"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Update(gomock.Any(), 1, model.UpdateBookRequest{Note: floatPtr(4), Avaliation: "Dragged on"}).
					Return(model.Book{ID: 1, Title: "Dune", Note: 4, Avaliation: "Dragged on", BookCover: strPtr("http://x/y.jpg")}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"title":"Dune","note":4,"avaliation":"Dragged on","book_cover":"http://x/y.jpg"}`,
		},
		{
			name:   "err. not found",
			method: http.MethodPatch,
			target: "/update/9",
			body:   `{"note":4,"avaliation":"x"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Update(gomock.Any(), 9, gomock.Any()).Return(model.Book{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Avaliation not found"}`,
		},
		{
			name:         "err. note required",
			method:       http.MethodPatch,
			target:       "/update/1",
			body:         `{"avaliation":"x"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Key: 'UpdateBookRequest.Note' Error:Field validation for 'Note' failed on the 'required' tag"}`,
		},
		{
			name:         "err. id out of int4 range",
			method:       http.MethodPatch,
			target:       "/update/2147483648",
			body:         `{"note":5,"avaliation":"x"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Avaliation not found"}`,
		},
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()
	runCases(t, []testCase{
		{
			name:   "ok",
			method: http.MethodDelete,
			target: "/delete/1",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Avaliation deleted successfully"}`,
		},
		{
			name:   "err. not found",
			method: http.MethodDelete,
			target: "/delete/2",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Delete(gomock.Any(), 2).Return(errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Avaliation not found"}`,
		},
		{
			name:         "err. id out of int4 range",
			method:       http.MethodDelete,
			target:       "/delete/99999999999",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Avaliation not found"}`,
		},
	})
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()
	runCases(t, []testCase{
		{
			name:   "ok. placeholder author and no thumbnail",
			method: http.MethodGet,
			target: "/search?title=dune",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Search(gomock.Any(), "dune").Return([]model.SearchResult{
					{Title: "Dune", Authors: []string{model.UnknownAuthor}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"title":"Dune","authors":["Autor não informado"],"thumbnail":null}]`,
		},
		{
			name:   "ok. no results",
			method: http.MethodGet,
			target: "/search?title=zzzz",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Search(gomock.Any(), "zzzz").Return([]model.SearchResult{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "err. title required",
			method:       http.MethodGet,
			target:       "/search",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Title query parameter is required"}`,
		},
		{
			name:   "err. upstream",
			method: http.MethodGet,
			target: "/search?title=dune",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Search(gomock.Any(), "dune").Return(nil, errors.Wrap(errs.ErrUpstream, "status 403"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal Server Error"}`,
		},
	})
}

func TestHandler_Router_NoAPIRateLimit(t *testing.T) {
	const requests = 300

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookService(c)
	svc.EXPECT().ListAll(gomock.Any()).Return([]model.Book{}, nil).Times(requests)
	e := handler.New(svc, zap.NewNop()).NewRouter()

	// every frontend call arrives from the same address
	for i := 0; i < requests; i++ {
		r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		r.RemoteAddr = "10.0.0.2:4000"
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

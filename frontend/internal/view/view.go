package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/Astemirdum/book-review/frontend/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

const (
	IndexPage      = "index.html"
	AddPage        = "add.html"
	AvaliationPage = "avaliation.html"
	EditPage       = "edit.html"
	NotFoundPage   = "not_found.html"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// Static returns the browser assets rooted at the static directory.
func Static() fs.FS {
	return echo.MustSubFS(staticFS, "static")
}

type Index struct {
	Avaliations []model.Book
}

type Add struct {
	Failed bool
}

// Avaliation is used by the detail and edit pages. Error holds the
// ?error= flag of a failed redirect.
type Avaliation struct {
	Avaliation model.Book
	Error      string
}

// Renderer renders every page inside the shared base layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	policy := bluemonday.UGCPolicy()
	funcs := template.FuncMap{
		"paragraphs": func(s string) template.HTML {
			return template.HTML(policy.Sanitize(nl2br(s))) //nolint:gosec
		},
		"coverURL": func(cover *string) string {
			if cover == nil {
				return ""
			}
			return *cover
		},
	}

	pages := make(map[string]*template.Template)
	for _, page := range []string{IndexPage, AddPage, AvaliationPage, EditPage, NotFoundPage} {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		pages[page] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}

var newlines = strings.NewReplacer("\r\n", "<br>", "\n", "<br>")

// nl2br escapes s and turns its line breaks into <br>.
func nl2br(s string) string {
	return newlines.Replace(template.HTMLEscapeString(s))
}

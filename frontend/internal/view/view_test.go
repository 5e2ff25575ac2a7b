package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Astemirdum/book-review/frontend/internal/model"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, page string, data any) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page, data, nil))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderer_ReviewBody(t *testing.T) {
	doc := render(t, AvaliationPage, Avaliation{Avaliation: model.Book{
		ID:         7,
		Title:      "Dune",
		Note:       9,
		Avaliation: "first line\n<script>alert(1)</script>\r\nlast line",
	}})

	body := doc.Find(".avaliation-body")
	require.Equal(t, 2, body.Find("br").Length())
	require.Equal(t, 0, body.Find("script").Length())
	require.Contains(t, body.Text(), "<script>alert(1)</script>")
	require.Equal(t, "Dune", strings.TrimSpace(doc.Find(".book-title").Text()))
}

func TestRenderer_CoverURL(t *testing.T) {
	evil := "javascript:alert(1)"
	doc := render(t, IndexPage, Index{Avaliations: []model.Book{
		{ID: 1, Title: "No cover", Note: 5},
		{ID: 2, Title: "Evil cover", Note: 5, BookCover: &evil},
	}})

	cards := doc.Find(".book-card")
	require.Equal(t, 2, cards.Length())
	require.Equal(t, 1, cards.Eq(0).Find(".no-cover").Length())

	src, ok := cards.Eq(1).Find("img.book-cover").Attr("src")
	require.True(t, ok)
	require.NotContains(t, src, "javascript")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	require.Error(t, r.Render(&bytes.Buffer{}, "missing.html", nil, nil))
}

func TestNl2br(t *testing.T) {
	require.Equal(t, "a<br>b<br>&lt;i&gt;", nl2br("a\r\nb\n<i>"))
}

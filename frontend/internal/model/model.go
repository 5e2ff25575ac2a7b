package model

type Book struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Note       float64 `json:"note"`
	Avaliation string  `json:"avaliation"`
	BookCover  *string `json:"book_cover"`
}

type CreateBookRequest struct {
	Title      string  `json:"title"`
	Note       float64 `json:"note"`
	Avaliation string  `json:"avaliation"`
	BookCover  *string `json:"bookCover,omitempty"`
}

type UpdateBookRequest struct {
	Note       float64 `json:"note"`
	Avaliation string  `json:"avaliation"`
}

// AddForm is the add page form. Author is shown to the user but not stored.
type AddForm struct {
	Title      string `form:"title"`
	Author     string `form:"author"`
	Note       string `form:"note"`
	Avaliation string `form:"avaliation"`
	BookCover  string `form:"book_cover"`
}

type EditForm struct {
	Note       string `form:"note"`
	Avaliation string `form:"avaliation"`
}

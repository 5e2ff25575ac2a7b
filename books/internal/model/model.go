package model

const UnknownAuthor = "Autor não informado"

type Book struct {
	ID         int     `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	Note       float64 `json:"note" db:"note"`
	Avaliation string  `json:"avaliation" db:"avaliation"`
	BookCover  *string `json:"book_cover" db:"book_cover"`
}

type CreateBookRequest struct {
	Title      string   `json:"title" validate:"required"`
	Note       *float64 `json:"note" validate:"required,min=0,max=10"`
	Avaliation string   `json:"avaliation"`
	BookCover  *string  `json:"bookCover"`
}

type UpdateBookRequest struct {
	Note       *float64 `json:"note" validate:"required,min=0,max=10"`
	Avaliation string   `json:"avaliation"`
}

type SearchResult struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Thumbnail *string  `json:"thumbnail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

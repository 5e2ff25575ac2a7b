package handler

import (
	"context"

	"github.com/Astemirdum/book-review/books/internal/model"
	"github.com/Astemirdum/book-review/books/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	Search(ctx context.Context, title string) ([]model.SearchResult, error)
	ListAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int) (model.Book, error)
	Create(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	Update(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	Delete(ctx context.Context, id int) error
}

var _ BookService = (*service.Service)(nil)

package handler

import (
	"context"

	"github.com/Astemirdum/book-review/frontend/internal/model"
	"github.com/Astemirdum/book-review/frontend/internal/service/backend"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BackendService interface {
	ListBooks(ctx context.Context) ([]model.Book, int, error)
	GetBook(ctx context.Context, id string) (model.Book, int, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, int, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, int, error)
	DeleteBook(ctx context.Context, id string) (int, error)
	Search(ctx context.Context, title string) ([]byte, int, error)
}

var _ BackendService = (*backend.Service)(nil)

package service

import (
	"context"

	"github.com/Astemirdum/book-review/books/internal/errs"
	"github.com/Astemirdum/book-review/books/internal/model"
	bookRepo "github.com/Astemirdum/book-review/books/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Searcher interface {
	Search(ctx context.Context, title string) ([]model.SearchResult, error)
}

type Service struct {
	log      *zap.Logger
	repo     bookRepo.Repository
	searcher Searcher
}

func NewService(repo bookRepo.Repository, searcher Searcher, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("service"),
		repo:     repo,
		searcher: searcher,
	}
}

func (s *Service) Search(ctx context.Context, title string) ([]model.SearchResult, error) {
	if title == "" {
		return nil, errs.ErrTitleRequired
	}
	return s.searcher.Search(ctx, title)
}

func (s *Service) ListAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) Create(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if req.Title == "" || req.Note == nil {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "title and note are required")
	}
	book := model.Book{
		Title:      req.Title,
		Note:       *req.Note,
		Avaliation: req.Avaliation,
	}
	if req.BookCover != nil && *req.BookCover != "" {
		book.BookCover = req.BookCover
	}
	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Debug("book created", zap.Int("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// Update changes note and avaliation only. Title and cover are immutable.
func (s *Service) Update(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	if req.Note == nil {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "note is required")
	}
	return s.repo.UpdateBook(ctx, id, *req.Note, req.Avaliation)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.log.Debug("book deleted", zap.Int("id", id))
	return nil
}

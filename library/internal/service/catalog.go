package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

func (s *Service) ListAvailable(ctx context.Context) ([]model.Book, error) {
	available, archived := true, false
	return s.repo.ListBooks(ctx, model.BookFilter{Available: &available, Archived: &archived})
}

func (s *Service) ListArchived(ctx context.Context) ([]model.Book, error) {
	archived := true
	return s.repo.ListBooks(ctx, model.BookFilter{Archived: &archived})
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error) {
	title, author := strings.TrimSpace(req.Title), strings.TrimSpace(req.Author)
	if title == "" || author == "" {
		return model.Book{}, errs.ErrTitleAuthorRequired
	}
	book, err := s.repo.CreateBook(ctx, model.Book{
		Title:       title,
		Author:      author,
		Genre:       strings.TrimSpace(req.Genre),
		Description: req.Description,
		PageCount:   req.Page,
		Rating:      req.Rating,
		IsAvailable: true,
	})
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book added", zap.Int("book_id", book.ID), zap.String("title", book.Title))
	return book, nil
}

// Archive hides a book from the available listing. Availability and open
// loans are untouched.
func (s *Service) Archive(ctx context.Context, id int) error {
	return s.repo.SetArchived(ctx, id, true)
}

func (s *Service) Unarchive(ctx context.Context, id int) error {
	return s.repo.SetArchived(ctx, id, false)
}

package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/repository"
	"github.com/Astemirdum/library-lending/pkg/auth"
	"github.com/Astemirdum/library-lending/pkg/kafka"
)

// BorrowBook opens a loan for the caller. The availability flag is claimed
// with a compare-and-set inside the same transaction that inserts the record,
// so of two concurrent borrowers exactly one wins.
func (s *Service) BorrowBook(ctx context.Context, p auth.Principal, bookID int) error {
	var rec model.BorrowRecord
	err := s.repo.InTx(ctx, func(tx repository.Tx) error {
		book, err := tx.GetBook(ctx, bookID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrBookNotAvailable
			}
			return err
		}
		if !book.IsAvailable || (book.IsArchived && !s.opts.AllowArchivedBorrow) {
			return errs.ErrBookNotAvailable
		}
		claimed, err := tx.UpdateAvailability(ctx, bookID, true, false)
		if err != nil {
			return err
		}
		if !claimed {
			return errs.ErrBookNotAvailable
		}
		rec, err = tx.CreateRecord(ctx, bookID, p.UserID, s.now().UTC())
		return err
	})
	if err != nil {
		return err
	}

	s.log.Info("book borrowed", zap.Int("book_id", bookID), zap.Int("user_id", p.UserID), zap.Int("record_id", rec.ID))
	s.publish(ctx, kafka.BookBorrowed, rec)
	return nil
}

// ReturnBook closes the caller's open loan and makes the book available again.
func (s *Service) ReturnBook(ctx context.Context, p auth.Principal, bookID int) error {
	var rec model.BorrowRecord
	err := s.repo.InTx(ctx, func(tx repository.Tx) error {
		var err error
		rec, err = tx.GetOpenRecord(ctx, bookID, p.UserID)
		if err != nil {
			return err
		}
		returnedAt := s.now().UTC()
		if err := tx.CloseRecord(ctx, rec.ID, returnedAt); err != nil {
			return err
		}
		rec.ReturnedAt = &returnedAt

		released, err := tx.UpdateAvailability(ctx, bookID, false, true)
		if err != nil {
			return err
		}
		if !released {
			s.log.Warn("returned book was not marked unavailable", zap.Int("book_id", bookID))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("book returned", zap.Int("book_id", bookID), zap.Int("user_id", p.UserID), zap.Int("record_id", rec.ID))
	s.publish(ctx, kafka.BookReturned, rec)
	return nil
}

// publish is best-effort; a committed loan is never undone by a broker failure.
func (s *Service) publish(ctx context.Context, typ kafka.EventType, rec model.BorrowRecord) {
	occurredAt := rec.BorrowedAt
	if rec.ReturnedAt != nil {
		occurredAt = *rec.ReturnedAt
	}
	err := s.publisher.Publish(ctx, kafka.EventLending{
		Type:       typ,
		BookID:     rec.BookID,
		UserID:     rec.UserID,
		RecordID:   rec.ID,
		OccurredAt: occurredAt,
	})
	if err != nil {
		s.log.Warn("publish lending event", zap.String("type", string(typ)), zap.Error(err))
	}
}

func (s *Service) MyHistory(ctx context.Context, p auth.Principal) ([]model.BorrowRecordView, error) {
	return s.repo.ListRecords(ctx, model.RecordFilter{UserID: &p.UserID})
}

func (s *Service) MyOngoing(ctx context.Context, p auth.Principal) ([]model.BorrowRecordView, error) {
	return s.repo.ListRecords(ctx, model.RecordFilter{UserID: &p.UserID, OngoingOnly: true})
}

func (s *Service) AllOngoing(ctx context.Context) ([]model.BorrowRecordView, error) {
	return s.repo.ListRecords(ctx, model.RecordFilter{OngoingOnly: true})
}

func (s *Service) AllHistory(ctx context.Context) ([]model.BorrowRecordView, error) {
	return s.repo.ListRecords(ctx, model.RecordFilter{})
}

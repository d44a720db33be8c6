package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

type txRepository struct {
	q   querier
	log *zap.Logger
}

func (t *txRepository) GetBook(ctx context.Context, id int) (model.Book, error) {
	return getBook(ctx, t.q, id)
}

func (t *txRepository) UpdateAvailability(ctx context.Context, bookID int, from, to bool) (bool, error) {
	q := fmt.Sprintf(`update %s set is_available = @to
	where id = @id and is_available = @from`, booksTableName)
	tag, err := t.q.Exec(ctx, q, pgx.NamedArgs{
		"id":   bookID,
		"from": from,
		"to":   to,
	})
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (t *txRepository) CreateRecord(ctx context.Context, bookID, userID int, borrowedAt time.Time) (model.BorrowRecord, error) {
	query, args, err := qb.Insert(recordsTableName).
		Columns("book_id", "user_id", "borrowed_at").
		Values(bookID, userID, borrowedAt).
		Suffix(returning(recordColumns)).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	defer rows.Close()

	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BorrowRecord])
	if err != nil {
		if isUniqueViolation(err) {
			return model.BorrowRecord{}, errs.ErrBookNotAvailable
		}
		t.log.Error("CreateRecord", zap.Int("book_id", bookID), zap.Int("user_id", userID), zap.Error(err))
		return model.BorrowRecord{}, errors.Wrap(err, "insert borrow record")
	}
	return rec, nil
}

func (t *txRepository) GetOpenRecord(ctx context.Context, bookID, userID int) (model.BorrowRecord, error) {
	query, args, err := qb.Select(recordColumns...).
		From(recordsTableName).
		Where(sq.Eq{"book_id": bookID, "user_id": userID, "returned_at": nil}).
		Limit(1).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	defer rows.Close()

	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BorrowRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrRecordNotFound
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

func (t *txRepository) CloseRecord(ctx context.Context, recordID int, returnedAt time.Time) error {
	q := fmt.Sprintf(`update %s set returned_at = @returned_at
	where id = @id and returned_at is null`, recordsTableName)
	tag, err := t.q.Exec(ctx, q, pgx.NamedArgs{
		"id":          recordID,
		"returned_at": returnedAt,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrRecordNotFound
	}
	return nil
}

// ListRecords returns record views newest first.
func (r *repository) ListRecords(ctx context.Context, filter model.RecordFilter) ([]model.BorrowRecordView, error) {
	q := qb.Select("r.id", "r.book_id", "b.title", "b.author", "r.borrowed_at", "r.returned_at").
		From(recordsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		OrderBy("r.borrowed_at desc", "r.id desc")
	if filter.UserID != nil {
		q = q.Where(sq.Eq{"r.user_id": *filter.UserID})
	}
	if filter.OngoingOnly {
		q = q.Where(sq.Eq{"r.returned_at": nil})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.BorrowRecordView])
}

package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

func getBook(ctx context.Context, q querier, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	return getBook(ctx, r.db, id)
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id")
	if filter.Available != nil {
		q = q.Where(sq.Eq{"is_available": *filter.Available})
	}
	if filter.Archived != nil {
		q = q.Where(sq.Eq{"is_archived": *filter.Archived})
	}
	return r.selectBooks(ctx, q)
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "genre", "description", "page_count", "rating", "is_available", "is_archived").
		Values(book.Title, book.Author, book.Genre, book.Description, book.PageCount, book.Rating, book.IsAvailable, book.IsArchived).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, errors.Wrap(err, "insert book")
	}
	return created, nil
}

func (r *repository) SetArchived(ctx context.Context, id int, archived bool) error {
	q := fmt.Sprintf(`update %s set is_archived = @archived where id = @id`, booksTableName)
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":       id,
		"archived": archived,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

// BorrowedBooks is every distinct book the user has ever borrowed.
func (r *repository) BorrowedBooks(ctx context.Context, userID int) ([]model.Book, error) {
	q := qb.Select(prefixed("b", bookColumns)...).
		Distinct().
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s r on r.book_id = b.id", recordsTableName)).
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("b.id")
	return r.selectBooks(ctx, q)
}

// RecommendationCandidates is every available, non-archived book the user never borrowed.
func (r *repository) RecommendationCandidates(ctx context.Context, userID int) ([]model.Book, error) {
	q := qb.Select(prefixed("b", bookColumns)...).
		From(booksTableName + " b").
		Where(sq.Eq{"b.is_available": true, "b.is_archived": false}).
		Where(sq.Expr(fmt.Sprintf("b.id not in (select book_id from %s where user_id = ?)", recordsTableName), userID)).
		OrderBy("b.id")
	return r.selectBooks(ctx, q)
}

func (r *repository) selectBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		r.log.Error("selectBooks", zap.String("q", query), zap.Error(err))
		return nil, err
	}
	return books, nil
}

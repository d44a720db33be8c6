package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

type Repository interface {
	// InTx runs fn inside one database transaction. Any error rolls it back.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	SetArchived(ctx context.Context, id int, archived bool) error

	ListRecords(ctx context.Context, filter model.RecordFilter) ([]model.BorrowRecordView, error)

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FindUserByLogin(ctx context.Context, identifier string) (model.User, error)

	BorrowedBooks(ctx context.Context, userID int) ([]model.Book, error)
	RecommendationCandidates(ctx context.Context, userID int) ([]model.Book, error)
}

// Tx is the ledger's view of a running transaction.
type Tx interface {
	GetBook(ctx context.Context, id int) (model.Book, error)
	// UpdateAvailability flips is_available from -> to and reports whether a row changed.
	UpdateAvailability(ctx context.Context, bookID int, from, to bool) (bool, error)
	CreateRecord(ctx context.Context, bookID, userID int, borrowedAt time.Time) (model.BorrowRecord, error)
	// GetOpenRecord locks the caller's open record for the book.
	GetOpenRecord(ctx context.Context, bookID, userID int) (model.BorrowRecord, error)
	CloseRecord(ctx context.Context, recordID int, returnedAt time.Time) error
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName   = `users`
	booksTableName   = `books`
	recordsTableName = `borrow_records`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bookColumns   = []string{"id", "title", "author", "genre", "description", "page_count", "rating", "is_available", "is_archived"}
	recordColumns = []string{"id", "book_id", "user_id", "borrowed_at", "returned_at"}
	userColumns   = []string{"id", "username", "email", "password_hash", "created_at"}
)

func (r *repository) InTx(ctx context.Context, fn func(tx Tx) error) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&txRepository{q: tx, log: r.log})
	})
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

func returning(cols []string) string {
	return "returning " + strings.Join(cols, ", ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

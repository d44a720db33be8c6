package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrEmailInUse
		}
		return model.User{}, errors.Wrap(err, "insert user")
	}
	return created, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s where lower(email) = lower(@email))`, usersTableName)
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"email": email})
	if err != nil {
		return false, err
	}
	defer rows.Close()

	return pgx.CollectOneRow(rows, pgx.RowTo[bool])
}

// FindUserByLogin matches a lower-cased identifier against email or
// username, preferring an email match.
func (r *repository) FindUserByLogin(ctx context.Context, identifier string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Or{
			sq.Expr("lower(email) = ?", identifier),
			sq.Expr("lower(username) = ?", identifier),
		}).
		OrderByClause("(lower(email) = ?) desc", identifier).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

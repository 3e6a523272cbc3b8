package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserAlreadyExists     = errors.New("user with this id already exists")
	ErrCategoryAlreadyExists = errors.New("category with this id already exists")
	ErrProductAlreadyExists  = errors.New("product with this id already exists")
	ErrDanglingReference     = errors.New("dangling reference")
	ErrDuplicateID           = errors.New("duplicate id")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

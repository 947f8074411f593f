package pg

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr = repositories.ErrUnknown
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, pgx.ErrNoRows):
		nativeErr = repositories.ErrNotFound
	}
	return fmt.Errorf("%w: %w", nativeErr, err)
}

package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
)

// fakeRow отдает заранее заданные значения или ошибку в Scan.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uint:
			*p = r.values[i].(uint)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

type fakeConn struct {
	row     fakeRow
	execErr error
	lastSQL string
	args    []any
}

func (c *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.lastSQL, c.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), c.execErr
}

func (c *fakeConn) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	c.lastSQL, c.args = sql, args
	return c.row
}

func TestShortURLRepo_Create(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		row     fakeRow
		wantErr error
	}{
		{name: "ok", row: fakeRow{values: []any{uint(7), now}}},
		{
			name:    "unique violation",
			row:     fakeRow{err: &pgconn.PgError{Code: uniqueViolationCode}},
			wantErr: repositories.ErrDuplicateKey,
		},
		{
			name:    "other pg error",
			row:     fakeRow{err: &pgconn.PgError{Code: "57P01"}},
			wantErr: repositories.ErrUnknown,
		},
		{
			name:    "connection error",
			row:     fakeRow{err: errors.New("conn reset")},
			wantErr: repositories.ErrUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeConn{row: tt.row}
			repo := NewShortURLRepo(conn, zap.NewNop())
			sURL := models.ShortURL{ShortCode: "Zx81", OriginalURL: "https://example.com"}

			err := repo.Create(t.Context(), &sURL)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(7), sURL.ID)
			assert.Equal(t, []any{"Zx81", "https://example.com"}, conn.args)
		})
	}
}

func TestShortURLRepo_GetByShortCode(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := NewShortURLRepo(&fakeConn{row: fakeRow{err: pgx.ErrNoRows}}, zap.NewNop())
		_, err := repo.GetByShortCode(t.Context(), "zzzz")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("found", func(t *testing.T) {
		row := fakeRow{values: []any{uint(1), time.Now(), "abcd", "https://example.com"}}
		repo := NewShortURLRepo(&fakeConn{row: row}, zap.NewNop())
		got, err := repo.GetByShortCode(t.Context(), "abcd")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.OriginalURL)
	})
}

func TestSettingsRepo(t *testing.T) {
	t.Run("upsert error", func(t *testing.T) {
		repo := NewSettingsRepo(&fakeConn{execErr: errors.New("read only")})
		err := repo.Upsert(t.Context(), models.ShortCodeLengthKey, "5")
		assert.ErrorIs(t, err, repositories.ErrUnknown)
	})

	t.Run("upsert passes key and value", func(t *testing.T) {
		conn := &fakeConn{}
		repo := NewSettingsRepo(conn)
		require.NoError(t, repo.Upsert(t.Context(), models.ShortCodeLengthKey, "5"))
		assert.Equal(t, []any{models.ShortCodeLengthKey, "5"}, conn.args)
	})

	t.Run("missing", func(t *testing.T) {
		repo := NewSettingsRepo(&fakeConn{row: fakeRow{err: pgx.ErrNoRows}})
		_, err := repo.Get(t.Context(), models.ShortCodeLengthKey)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

package reading

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quranapi/quran-api/internal/database"
)

type Repository interface {
	CreateBookmark(ctx context.Context, surah, ayat int) error
	ListBookmarks(ctx context.Context) ([]Bookmark, error)
	DeleteBookmark(ctx context.Context, id int) error
	ReplaceLastRead(ctx context.Context, surah, ayat int) error
	// GetLastRead returns nil, nil when nothing has been recorded.
	GetLastRead(ctx context.Context) (*LastRead, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewReadingRepo(dbService database.Service) Repository {
	return &repository{pool: dbService.Pool()}
}

func (r *repository) CreateBookmark(ctx context.Context, surah, ayat int) error {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `INSERT INTO bookmark (surah, ayat) VALUES ($1, $2)`, surah, ayat)
	if err != nil {
		return fmt.Errorf("insert bookmark: %w", err)
	}
	return nil
}

func (r *repository) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, surah, ayat, created_at
		FROM bookmark
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Bookmark])
}

// DeleteBookmark does not report whether a row existed.
func (r *repository) DeleteBookmark(ctx context.Context, id int) error {
	if !database.IDInRange(id) {
		return nil
	}

	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `DELETE FROM bookmark WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

// ReplaceLastRead clears the table and inserts one row in a single
// transaction. The table lock serializes concurrent writers.
func (r *repository) ReplaceLastRead(ctx context.Context, surah, ayat int) error {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return err
	}
	defer conn.Release()

	err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE last_read IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock last read: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM last_read`); err != nil {
			return fmt.Errorf("clear last read: %w", err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO last_read (surah, ayat) VALUES ($1, $2)`, surah, ayat); err != nil {
			return fmt.Errorf("insert last read: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace last read: %w", err)
	}
	return nil
}

func (r *repository) GetLastRead(ctx context.Context) (*LastRead, error) {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var lr LastRead
	err = conn.QueryRow(ctx, `
		SELECT id, surah, ayat, updated_at
		FROM last_read
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&lr.ID, &lr.Surah, &lr.Ayat, &lr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last read: %w", err)
	}
	return &lr, nil
}

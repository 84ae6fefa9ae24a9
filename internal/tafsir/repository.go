package tafsir

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quranapi/quran-api/internal/database"
	"github.com/quranapi/quran-api/pkg/apperr"
)

var ErrTafsirNotFound = apperr.NotFound("Tafsir tidak ditemukan")

type Repository interface {
	GetTafsir(ctx context.Context, surahID, ayat int) (*Tafsir, error)
	CreateTafsir(ctx context.Context, surahID, ayat int, text string) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewTafsirRepo(dbService database.Service) Repository {
	return &repository{pool: dbService.Pool()}
}

// GetTafsir returns the newest commentary for the verse when several exist.
func (r *repository) GetTafsir(ctx context.Context, surahID, ayat int) (*Tafsir, error) {
	if !database.IDInRange(surahID) || !database.IDInRange(ayat) {
		return nil, ErrTafsirNotFound
	}

	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, surah_id, ayat, tafsir_text, created_at
		FROM tafsir
		WHERE surah_id = $1 AND ayat = $2
		ORDER BY id DESC
		LIMIT 1
	`, surahID, ayat)
	if err != nil {
		return nil, fmt.Errorf("get tafsir: %w", err)
	}

	t, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[Tafsir])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTafsirNotFound
		}
		return nil, fmt.Errorf("get tafsir: %w", err)
	}
	return t, nil
}

func (r *repository) CreateTafsir(ctx context.Context, surahID, ayat int, text string) error {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
		INSERT INTO tafsir (surah_id, ayat, tafsir_text)
		VALUES ($1, $2, $3)
	`, surahID, ayat, text)
	if err != nil {
		return fmt.Errorf("insert tafsir: %w", err)
	}
	return nil
}

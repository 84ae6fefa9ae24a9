package quran

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quranapi/quran-api/internal/database"
	"github.com/quranapi/quran-api/pkg/apperr"
)

var (
	ErrSurahNotFound = apperr.NotFound("Surah tidak ditemukan")
	ErrJuzNotFound   = apperr.NotFound("Juz tidak ditemukan")
)

type Repository interface {
	ListSurah(ctx context.Context) ([]Surah, error)
	GetSurahWithAyat(ctx context.Context, id int) (*Surah, []AyatText, error)
	ListAyat(ctx context.Context) ([]Ayat, error)
	SearchAyat(ctx context.Context, query string, scope SearchScope) ([]SearchResult, error)
	ListJuz(ctx context.Context) ([]Juz, error)
	GetJuzWithAyat(ctx context.Context, id int) (*Juz, []JuzAyat, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewQuranRepo(dbService database.Service) Repository {
	return &repository{pool: dbService.Pool()}
}

func (r *repository) ListSurah(ctx context.Context) ([]Surah, error) {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, nama, nama_latin, arti, jumlah_ayat, tempat_turun, deskripsi
		FROM surah
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list surah: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Surah])
}

func (r *repository) GetSurahWithAyat(ctx context.Context, id int) (*Surah, []AyatText, error) {
	if !database.IDInRange(id) {
		return nil, nil, ErrSurahNotFound
	}

	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, nama, nama_latin, arti, jumlah_ayat, tempat_turun, deskripsi
		FROM surah
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get surah: %w", err)
	}

	surah, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Surah])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrSurahNotFound
		}
		return nil, nil, fmt.Errorf("get surah: %w", err)
	}

	rows, err = conn.Query(ctx, `
		SELECT nomor_ayat, teks_arab, teks_latin, teks_indonesia
		FROM ayat
		WHERE surah_id = $1
		ORDER BY nomor_ayat ASC
	`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list surah ayat: %w", err)
	}

	ayat, err := pgx.CollectRows(rows, pgx.RowToStructByName[AyatText])
	if err != nil {
		return nil, nil, fmt.Errorf("list surah ayat: %w", err)
	}

	return surah, ayat, nil
}

func (r *repository) ListAyat(ctx context.Context) ([]Ayat, error) {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, surah_id, nomor_ayat, teks_arab, teks_latin, teks_indonesia
		FROM ayat
		ORDER BY surah_id, nomor_ayat ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list ayat: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Ayat])
}

func (r *repository) SearchAyat(ctx context.Context, query string, scope SearchScope) ([]SearchResult, error) {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	where := `a.teks_arab ILIKE $1 OR a.teks_indonesia ILIKE $1`
	if scope == SearchTranslation {
		where = `a.teks_indonesia ILIKE $1`
	}

	rows, err := conn.Query(ctx, `
		SELECT a.surah_id, s.nama AS nama_surah, a.nomor_ayat,
		       a.teks_arab, a.teks_latin, a.teks_indonesia
		FROM ayat a
		JOIN surah s ON a.surah_id = s.id
		WHERE `+where+`
		ORDER BY a.surah_id, a.nomor_ayat
	`, containsPattern(query))
	if err != nil {
		return nil, fmt.Errorf("search ayat: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[SearchResult])
}

func (r *repository) ListJuz(ctx context.Context) ([]Juz, error) {
	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `SELECT id, start_verse, end_verse FROM juz ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list juz: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Juz])
}

func (r *repository) GetJuzWithAyat(ctx context.Context, id int) (*Juz, []JuzAyat, error) {
	if !database.IDInRange(id) {
		return nil, nil, ErrJuzNotFound
	}

	conn, err := database.Acquire(ctx, r.pool)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Release()

	var juz Juz
	err = conn.QueryRow(ctx, `SELECT id, start_verse, end_verse FROM juz WHERE id = $1`, id).
		Scan(&juz.ID, &juz.StartVerse, &juz.EndVerse)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrJuzNotFound
		}
		return nil, nil, fmt.Errorf("get juz: %w", err)
	}

	rows, err := conn.Query(ctx, `
		SELECT a.id AS ayat_id, a.surah_id, s.nama AS nama_surah, a.nomor_ayat,
		       a.teks_arab, a.teks_latin, a.teks_indonesia
		FROM ayat a
		JOIN surah s ON a.surah_id = s.id
		WHERE a.id BETWEEN $1 AND $2
		ORDER BY a.id
	`, juz.StartVerse, juz.EndVerse)
	if err != nil {
		return nil, nil, fmt.Errorf("list juz ayat: %w", err)
	}

	ayat, err := pgx.CollectRows(rows, pgx.RowToStructByName[JuzAyat])
	if err != nil {
		return nil, nil, fmt.Errorf("list juz ayat: %w", err)
	}

	return &juz, ayat, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns q into an ILIKE pattern matching q literally
// anywhere in the column.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

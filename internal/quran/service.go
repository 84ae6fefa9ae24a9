package quran

import (
	"context"
	"strings"

	"github.com/quranapi/quran-api/pkg/apperr"
)

var ErrEmptyQuery = apperr.Validation("Query parameter 'q' dibutuhkan")

type QuranService struct {
	repo Repository
}

func NewQuranService(repo Repository) QuranService {
	return QuranService{repo: repo}
}

func (s *QuranService) ListSurah(ctx context.Context) ([]Surah, error) {
	return s.repo.ListSurah(ctx)
}

func (s *QuranService) GetSurahDetail(ctx context.Context, id int) (*Surah, []AyatText, error) {
	return s.repo.GetSurahWithAyat(ctx, id)
}

func (s *QuranService) ListAyat(ctx context.Context) ([]Ayat, error) {
	return s.repo.ListAyat(ctx)
}

// Search runs a case-insensitive substring search. The query is trimmed
// first; an empty query is a validation error and never reaches the store.
func (s *QuranService) Search(ctx context.Context, query string, scope SearchScope) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return s.repo.SearchAyat(ctx, query, scope)
}

func (s *QuranService) ListJuz(ctx context.Context) ([]Juz, error) {
	return s.repo.ListJuz(ctx)
}

func (s *QuranService) GetJuzDetail(ctx context.Context, id int) (*Juz, []JuzAyat, error) {
	return s.repo.GetJuzWithAyat(ctx, id)
}

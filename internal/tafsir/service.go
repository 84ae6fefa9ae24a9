package tafsir

import (
	"context"
	"strings"

	"github.com/quranapi/quran-api/pkg/validation"
)

const msgMissingFields = "Surah, Ayat, dan Tafsir wajib diisi"

type TafsirService struct {
	repo      Repository
	validator *validation.Validator
}

func NewTafsirService(repo Repository, validator *validation.Validator) TafsirService {
	return TafsirService{repo: repo, validator: validator}
}

func (s *TafsirService) GetTafsir(ctx context.Context, surahID, ayat int) (*Tafsir, error) {
	return s.repo.GetTafsir(ctx, surahID, ayat)
}

func (s *TafsirService) CreateTafsir(ctx context.Context, req CreateTafsirRequest) error {
	req.TafsirText = strings.TrimSpace(req.TafsirText)
	if err := s.validator.Validate(req, msgMissingFields); err != nil {
		return err
	}
	return s.repo.CreateTafsir(ctx, req.SurahID, req.Ayat, req.TafsirText)
}

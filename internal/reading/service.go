package reading

import (
	"context"

	"github.com/quranapi/quran-api/pkg/validation"
)

const msgMissingPosition = "Surah dan Ayat harus diisi"

type ReadingService struct {
	repo      Repository
	validator *validation.Validator
}

func NewReadingService(repo Repository, validator *validation.Validator) ReadingService {
	return ReadingService{repo: repo, validator: validator}
}

func (s *ReadingService) AddBookmark(ctx context.Context, req PositionRequest) error {
	if err := s.validator.Validate(req, msgMissingPosition); err != nil {
		return err
	}
	return s.repo.CreateBookmark(ctx, req.Surah, req.Ayat)
}

func (s *ReadingService) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	return s.repo.ListBookmarks(ctx)
}

func (s *ReadingService) DeleteBookmark(ctx context.Context, id int) error {
	return s.repo.DeleteBookmark(ctx, id)
}

func (s *ReadingService) SetLastRead(ctx context.Context, req PositionRequest) error {
	if err := s.validator.Validate(req, msgMissingPosition); err != nil {
		return err
	}
	return s.repo.ReplaceLastRead(ctx, req.Surah, req.Ayat)
}

func (s *ReadingService) GetLastRead(ctx context.Context) (*LastRead, error) {
	return s.repo.GetLastRead(ctx)
}

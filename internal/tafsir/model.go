package tafsir

import "time"

type Tafsir struct {
	ID         int       `json:"id" db:"id"`
	SurahID    int       `json:"surah_id" db:"surah_id"`
	Ayat       int       `json:"ayat" db:"ayat"`
	TafsirText string    `json:"tafsir_text" db:"tafsir_text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CreateTafsirRequest struct {
	SurahID    int    `json:"surah_id" validate:"required"`
	Ayat       int    `json:"ayat" validate:"required"`
	TafsirText string `json:"tafsir_text" validate:"required"`
}

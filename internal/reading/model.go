package reading

import "time"

type Bookmark struct {
	ID        int       `json:"id" db:"id"`
	Surah     int       `json:"surah" db:"surah"`
	Ayat      int       `json:"ayat" db:"ayat"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type LastRead struct {
	ID        int       `json:"id" db:"id"`
	Surah     int       `json:"surah" db:"surah"`
	Ayat      int       `json:"ayat" db:"ayat"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PositionRequest is the body of both bookmark and last-read writes.
type PositionRequest struct {
	Surah int `json:"surah" validate:"required"`
	Ayat  int `json:"ayat" validate:"required"`
}

// Package util holds request parsing helpers shared by the handlers.
package util

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quranapi/quran-api/pkg/apperr"
)

// MaxBodyBytes bounds JSON request bodies.
const MaxBodyBytes = 1 << 20

var (
	ErrInvalidJSON = apperr.Validation("Data JSON tidak valid")
	ErrInvalidID   = apperr.Validation("ID tidak valid")

	// ErrIDOutOfRange is returned for ids larger than the INTEGER key
	// columns can hold. No row can have such an id.
	ErrIDOutOfRange = apperr.NotFound("Data tidak ditemukan")
)

// URLParamInt reads a numeric chi route parameter as a 32-bit value, the
// width of every id column.
func URLParamInt(r *http.Request, key string) (int, error) {
	n, err := strconv.ParseInt(chi.URLParam(r, key), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrIDOutOfRange
		}
		return 0, ErrInvalidID
	}
	return int(n), nil
}

// DecodeJSON decodes the request body into dst. A missing, empty, or
// malformed body, a JSON null, or anything after the first value yields
// ErrInvalidJSON.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return ErrInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrInvalidJSON
	}
	if string(raw) == "null" {
		return ErrInvalidJSON
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

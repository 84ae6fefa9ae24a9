package tafsir

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quranapi/quran-api/pkg/response"
	"github.com/quranapi/quran-api/pkg/util"
)

type TafsirHandler struct {
	service TafsirService
	log     *slog.Logger
}

func NewTafsirHandler(service TafsirService, log *slog.Logger) TafsirHandler {
	return TafsirHandler{service: service, log: log}
}

func (h *TafsirHandler) GetTafsirHandler(w http.ResponseWriter, r *http.Request) {
	surahID, err := verseParam(r, "surah_id")
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}
	ayat, err := verseParam(r, "ayat")
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	t, err := h.service.GetTafsir(r.Context(), surahID, ayat)
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{"tafsir": t})
}

// verseParam reads a route number; values too large to be stored have no
// tafsir.
func verseParam(r *http.Request, key string) (int, error) {
	n, err := util.URLParamInt(r, key)
	if errors.Is(err, util.ErrIDOutOfRange) {
		return 0, ErrTafsirNotFound
	}
	return n, err
}

func (h *TafsirHandler) CreateTafsirHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTafsirRequest
	if err := util.DecodeJSON(w, r, &req); err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	if err := h.service.CreateTafsir(r.Context(), req); err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Message(w, "Tafsir berhasil ditambahkan")
}

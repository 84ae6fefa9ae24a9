package quran

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quranapi/quran-api/pkg/response"
	"github.com/quranapi/quran-api/pkg/util"
)

type QuranHandler struct {
	service QuranService
	audio   AudioSource
	log     *slog.Logger
}

func NewQuranHandler(service QuranService, audio AudioSource, log *slog.Logger) QuranHandler {
	return QuranHandler{service: service, audio: audio, log: log}
}

func (h *QuranHandler) ListSurahHandler(w http.ResponseWriter, r *http.Request) {
	surah, err := h.service.ListSurah(r.Context())
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"total": len(surah),
		"surah": surah,
	})
}

func (h *QuranHandler) GetSurahHandler(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamInt(r, "id")
	if errors.Is(err, util.ErrIDOutOfRange) {
		err = ErrSurahNotFound
	}
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	surah, ayat, err := h.service.GetSurahDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"surah": surah,
		"ayat":  ayat,
	})
}

func (h *QuranHandler) ListAyatHandler(w http.ResponseWriter, r *http.Request) {
	ayat, err := h.service.ListAyat(r.Context())
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"total": len(ayat),
		"ayat":  ayat,
	})
}

func (h *QuranHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, SearchAll)
}

func (h *QuranHandler) SearchTranslationHandler(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, SearchTranslation)
}

func (h *QuranHandler) search(w http.ResponseWriter, r *http.Request, scope SearchScope) {
	results, err := h.service.Search(r.Context(), r.URL.Query().Get("q"), scope)
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"total":   len(results),
		"results": results,
	})
}

func (h *QuranHandler) ListJuzHandler(w http.ResponseWriter, r *http.Request) {
	juz, err := h.service.ListJuz(r.Context())
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"total": len(juz),
		"juz":   juz,
	})
}

func (h *QuranHandler) GetJuzHandler(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamInt(r, "id")
	if errors.Is(err, util.ErrIDOutOfRange) {
		err = ErrJuzNotFound
	}
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	juz, ayat, err := h.service.GetJuzDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"juz":  juz,
		"ayat": ayat,
	})
}

func (h *QuranHandler) AudioAyatHandler(w http.ResponseWriter, r *http.Request) {
	surah, err := util.URLParamInt(r, "surah")
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}
	ayat, err := util.URLParamInt(r, "ayat")
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"surah":     surah,
		"ayat":      ayat,
		"audio_url": h.audio.AyatURL(surah, ayat),
	})
}

func (h *QuranHandler) AudioFullHandler(w http.ResponseWriter, r *http.Request) {
	surah, err := util.URLParamInt(r, "surah")
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	url, err := h.audio.FullURL(surah, r.URL.Query().Get("qari"))
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"surah":     surah,
		"audio_url": url,
	})
}

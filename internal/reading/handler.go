package reading

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quranapi/quran-api/pkg/response"
	"github.com/quranapi/quran-api/pkg/util"
)

type ReadingHandler struct {
	service ReadingService
	log     *slog.Logger
}

func NewReadingHandler(service ReadingService, log *slog.Logger) ReadingHandler {
	return ReadingHandler{service: service, log: log}
}

func (h *ReadingHandler) AddBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if err := util.DecodeJSON(w, r, &req); err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	if err := h.service.AddBookmark(r.Context(), req); err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Message(w, "Bookmark ditambahkan")
}

func (h *ReadingHandler) ListBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.service.ListBookmarks(r.Context())
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Success(w, response.Fields{
		"total":   len(bookmarks),
		"results": bookmarks,
	})
}

func (h *ReadingHandler) DeleteBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamInt(r, "id")
	if errors.Is(err, util.ErrIDOutOfRange) {
		// No bookmark can have this id.
		response.Message(w, "Bookmark dihapus")
		return
	}
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	if err := h.service.DeleteBookmark(r.Context(), id); err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Message(w, "Bookmark dihapus")
}

func (h *ReadingHandler) SetLastReadHandler(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if err := util.DecodeJSON(w, r, &req); err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	if err := h.service.SetLastRead(r.Context(), req); err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	response.Message(w, "Last read diperbarui")
}

func (h *ReadingHandler) GetLastReadHandler(w http.ResponseWriter, r *http.Request) {
	lastRead, err := h.service.GetLastRead(r.Context())
	if err != nil {
		response.HandleError(w, err, h.log)
		return
	}

	if lastRead == nil {
		response.Success(w, response.Fields{
			"message":   "Belum ada last read",
			"last_read": nil,
		})
		return
	}

	response.Success(w, response.Fields{"last_read": lastRead})
}

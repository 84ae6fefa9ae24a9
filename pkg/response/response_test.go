package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quranapi/quran-api/pkg/apperr"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessAddsStatus(t *testing.T) {
	w := httptest.NewRecorder()

	Success(w, Fields{"total": 2, "surah": []string{"a", "b"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 2, body["total"])
	assert.Len(t, body["surah"], 2)
}

func TestSuccessDoesNotMutateFields(t *testing.T) {
	fields := Fields{"message": "ok"}
	Success(httptest.NewRecorder(), fields)

	_, ok := fields["status"]
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()

	Message(w, "Bookmark ditambahkan")

	body := decode(t, w)
	assert.Equal(t, map[string]any{"status": "success", "message": "Bookmark ditambahkan"}, body)
}

func TestHandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Validation("Query parameter 'q' dibutuhkan"), http.StatusBadRequest, "Query parameter 'q' dibutuhkan"},
		{"not found wrapped", fmt.Errorf("get: %w", apperr.NotFound("Surah tidak ditemukan")), http.StatusNotFound, "Surah tidak ditemukan"},
		{"connection", apperr.Connection(errors.New("refused")), http.StatusInternalServerError, "Koneksi database gagal"},
		{"unknown", errors.New("syntax error at or near"), http.StatusInternalServerError, "syntax error at or near"},
		{"internal", apperr.Internal("Terjadi kesalahan pada server", errors.New("nil map")), http.StatusInternalServerError, "Terjadi kesalahan pada server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			HandleError(w, tt.err, logger)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestHandleErrorNilLogger(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, errors.New("boom"), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

package reading

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quranapi/quran-api/pkg/apperr"
	"github.com/quranapi/quran-api/pkg/validation"
)

// memRepo mirrors the SQL semantics in memory.
type memRepo struct {
	bookmarks []Bookmark
	lastRead  []LastRead
	nextID    int
	err       error
}

func (m *memRepo) CreateBookmark(ctx context.Context, surah, ayat int) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	m.bookmarks = append(m.bookmarks, Bookmark{ID: m.nextID, Surah: surah, Ayat: ayat})
	return nil
}

func (m *memRepo) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := append([]Bookmark{}, m.bookmarks...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memRepo) DeleteBookmark(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	kept := m.bookmarks[:0]
	for _, b := range m.bookmarks {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	m.bookmarks = kept
	return nil
}

func (m *memRepo) ReplaceLastRead(ctx context.Context, surah, ayat int) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	m.lastRead = []LastRead{{ID: m.nextID, Surah: surah, Ayat: ayat}}
	return nil
}

func (m *memRepo) GetLastRead(ctx context.Context) (*LastRead, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.lastRead) == 0 {
		return nil, nil
	}
	return &m.lastRead[len(m.lastRead)-1], nil
}

func newTestHandler(repo Repository) ReadingHandler {
	return NewReadingHandler(
		NewReadingService(repo, validation.New()),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func do(h http.HandlerFunc, method, target, payload string, params map[string]string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != "" {
		body = strings.NewReader(payload)
	}
	r := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAddBookmarkThenList(t *testing.T) {
	h := newTestHandler(&memRepo{})

	w := do(h.AddBookmarkHandler, http.MethodPost, "/api/bookmark", `{"surah":1,"ayat":7}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(h.AddBookmarkHandler, http.MethodPost, "/api/bookmark", `{"surah":2,"ayat":255}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"status": "success", "message": "Bookmark ditambahkan"}, decodeBody(t, w))

	w = do(h.ListBookmarksHandler, http.MethodGet, "/api/bookmark", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 2, body["total"])
	results := body["results"].([]any)
	first := results[0].(map[string]any)
	assert.EqualValues(t, 2, first["surah"], "most recent first")
	assert.EqualValues(t, 255, first["ayat"])
	assert.EqualValues(t, 2, first["id"])
}

func TestAddBookmarkValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"no body", "", "Data JSON tidak valid"},
		{"not json", "surah=1", "Data JSON tidak valid"},
		{"missing ayat", `{"surah":1}`, "Surah dan Ayat harus diisi"},
		{"zero surah", `{"surah":0,"ayat":1}`, "Surah dan Ayat harus diisi"},
		{"empty object", `{}`, "Surah dan Ayat harus diisi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{}
			h := newTestHandler(repo)

			w := do(h.AddBookmarkHandler, http.MethodPost, "/api/bookmark", tt.payload, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]any{"status": "error", "message": tt.wantMsg}, decodeBody(t, w))
			assert.Empty(t, repo.bookmarks)
		})
	}
}

func TestDeleteUnknownBookmarkSucceeds(t *testing.T) {
	h := newTestHandler(&memRepo{})

	w := do(h.DeleteBookmarkHandler, http.MethodDelete, "/api/bookmark/42", "", map[string]string{"id": "42"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"status": "success", "message": "Bookmark dihapus"}, decodeBody(t, w))
}

func TestLastReadLifecycle(t *testing.T) {
	repo := &memRepo{}
	h := newTestHandler(repo)

	w := do(h.GetLastReadHandler, http.MethodGet, "/api/last_read", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Belum ada last read", body["message"])
	assert.Contains(t, body, "last_read")
	assert.Nil(t, body["last_read"])

	w = do(h.SetLastReadHandler, http.MethodPost, "/api/last_read", `{"surah":18,"ayat":10}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Last read diperbarui", decodeBody(t, w)["message"])

	w = do(h.SetLastReadHandler, http.MethodPost, "/api/last_read", `{"surah":36,"ayat":1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.lastRead, 1)

	w = do(h.GetLastReadHandler, http.MethodGet, "/api/last_read", "", nil)
	lr := decodeBody(t, w)["last_read"].(map[string]any)
	assert.EqualValues(t, 36, lr["surah"])
	assert.EqualValues(t, 1, lr["ayat"])
}

func TestSetLastReadValidation(t *testing.T) {
	h := newTestHandler(&memRepo{})

	w := do(h.SetLastReadHandler, http.MethodPost, "/api/last_read", `{"surah":18}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Surah dan Ayat harus diisi", decodeBody(t, w)["message"])
}

func TestReadingStoreFailure(t *testing.T) {
	h := newTestHandler(&memRepo{err: apperr.Connection(errors.New("refused"))})

	w := do(h.ListBookmarksHandler, http.MethodGet, "/api/bookmark", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Koneksi database gagal", decodeBody(t, w)["message"])
}

func TestDeleteBookmarkIDBeyondInt32(t *testing.T) {
	repo := &memRepo{bookmarks: []Bookmark{{ID: 1, Surah: 1, Ayat: 1}}}
	h := newTestHandler(repo)

	w := do(h.DeleteBookmarkHandler, http.MethodDelete, "/api/bookmark/3000000000", "", map[string]string{"id": "3000000000"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"status": "success", "message": "Bookmark dihapus"}, decodeBody(t, w))
	assert.Len(t, repo.bookmarks, 1)
}

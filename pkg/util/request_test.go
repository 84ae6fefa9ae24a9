package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quranapi/quran-api/pkg/apperr"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestURLParamInt(t *testing.T) {
	r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/surah/2", nil), "id", "2")

	n, err := URLParamInt(r, "id")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestURLParamIntOutOfRange(t *testing.T) {
	for _, value := range []string{"2147483648", "3000000000", "99999999999999999999999"} {
		r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", value)

		_, err := URLParamInt(r, "id")
		assert.ErrorIs(t, err, ErrIDOutOfRange, value)
		assert.ErrorIs(t, err, apperr.ErrNotFound, value)
	}
}

func TestURLParamIntMaxInt32(t *testing.T) {
	r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "2147483647")

	n, err := URLParamInt(r, "id")
	require.NoError(t, err)
	assert.Equal(t, 2147483647, n)
}

func TestURLParamIntNotANumber(t *testing.T) {
	r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "")

	_, err := URLParamInt(r, "id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

type body struct {
	Surah int `json:"surah"`
	Ayat  int `json:"ayat"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"surah":2,"ayat":255}`, false},
		{"empty object", `{}`, false},
		{"empty body", ``, true},
		{"null", `null`, true},
		{"malformed", `{"surah":`, true},
		{"wrong type", `{"surah":"dua"}`, true},
		{"trailing text", `{"surah":1,"ayat":1} trailing`, true},
		{"second object", `{"surah":1,"ayat":1}{"surah":2,"ayat":2}`, true},
		{"trailing whitespace", "{\"surah\":1,\"ayat\":1}\n  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/bookmark", strings.NewReader(tt.payload))
			var dst body

			err := DecodeJSON(httptest.NewRecorder(), r, &dst)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidJSON)
				return
			}
			assert.NoError(t, err)
		})
	}
}

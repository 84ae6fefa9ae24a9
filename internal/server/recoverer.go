package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/quranapi/quran-api/pkg/apperr"
	"github.com/quranapi/quran-api/pkg/response"
)

// recoverer turns a handler panic into a JSON 500. It follows chi's
// middleware.Recoverer, including letting http.ErrAbortHandler through.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				err := apperr.Internal("Terjadi kesalahan pada server",
					fmt.Errorf("panic: %v\n%s", rvr, debug.Stack()))
				response.HandleError(w, err, log)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

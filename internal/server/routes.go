package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quranapi/quran-api/internal/logger"
	"github.com/quranapi/quran-api/internal/quran"
	"github.com/quranapi/quran-api/internal/ratelimit"
	"github.com/quranapi/quran-api/internal/reading"
	"github.com/quranapi/quran-api/internal/tafsir"
	"github.com/quranapi/quran-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger(s.log))
	r.Use(recoverer(s.log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if s.limiter != nil {
		r.Use(ratelimit.Middleware(s.limiter))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, "Endpoint tidak ditemukan")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method tidak diizinkan")
	})

	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.ServerIsWorking)
		s.loadQuranRoutes(r)
		s.loadTafsirRoutes(r)
		s.loadReadingRoutes(r)
	})

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	response.Message(w, "Quran API berjalan")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := s.db.Health()
	if stats["status"] != "up" {
		response.JSON(w, http.StatusServiceUnavailable, response.Fields{
			"status":   response.StatusError,
			"message":  "Koneksi database gagal",
			"database": stats,
		})
		return
	}

	response.Success(w, response.Fields{"database": stats})
}

func (s *Server) loadQuranRoutes(router chi.Router) {
	quranRepo := quran.NewQuranRepo(s.db)
	quranService := quran.NewQuranService(quranRepo)
	audio := quran.AudioSource{
		AyatBaseURL: s.cfg.AudioAyatBaseURL,
		FullBaseURL: s.cfg.AudioFullBaseURL,
		DefaultQari: s.cfg.AudioDefaultQari,
	}
	quranHandler := quran.NewQuranHandler(quranService, audio, s.log)

	router.Get("/surah", quranHandler.ListSurahHandler)
	router.Get("/surah/{id:[0-9]+}", quranHandler.GetSurahHandler)
	router.Get("/ayat", quranHandler.ListAyatHandler)
	router.Get("/search", quranHandler.SearchHandler)
	router.Get("/search/terjemahan", quranHandler.SearchTranslationHandler)
	router.Get("/juz", quranHandler.ListJuzHandler)
	router.Get("/juz/{id:[0-9]+}", quranHandler.GetJuzHandler)

	router.Get("/audio/{surah:[0-9]+}/{ayat:[0-9]+}", quranHandler.AudioAyatHandler)
	router.Get("/audio/full/{surah:[0-9]+}", quranHandler.AudioFullHandler)
}

func (s *Server) loadTafsirRoutes(router chi.Router) {
	tafsirRepo := tafsir.NewTafsirRepo(s.db)
	tafsirService := tafsir.NewTafsirService(tafsirRepo, s.validator)
	tafsirHandler := tafsir.NewTafsirHandler(tafsirService, s.log)

	router.Get("/tafsir/{surah_id:[0-9]+}/{ayat:[0-9]+}", tafsirHandler.GetTafsirHandler)
	router.Post("/tafsir", tafsirHandler.CreateTafsirHandler)
}

func (s *Server) loadReadingRoutes(router chi.Router) {
	readingRepo := reading.NewReadingRepo(s.db)
	readingService := reading.NewReadingService(readingRepo, s.validator)
	readingHandler := reading.NewReadingHandler(readingService, s.log)

	router.Post("/bookmark", readingHandler.AddBookmarkHandler)
	router.Get("/bookmark", readingHandler.ListBookmarksHandler)
	router.Delete("/bookmark/{id:[0-9]+}", readingHandler.DeleteBookmarkHandler)

	router.Post("/last_read", readingHandler.SetLastReadHandler)
	router.Get("/last_read", readingHandler.GetLastReadHandler)
}

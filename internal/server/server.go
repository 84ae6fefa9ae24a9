package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/quranapi/quran-api/internal/database"
	"github.com/quranapi/quran-api/internal/ratelimit"
	"github.com/quranapi/quran-api/pkg/config"
	"github.com/quranapi/quran-api/pkg/validation"
)

type Server struct {
	port      string
	db        database.Service
	handler   http.Handler
	cfg       *config.Config
	log       *slog.Logger
	validator *validation.Validator
	limiter   *ratelimit.KeyedRateLimiter
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config, log *slog.Logger) *Server {
	stats := db.Health()
	if stats["status"] != "up" {
		log.Warn("database is not healthy", "error", stats["error"])
	} else {
		log.Info("database connection successful")
	}

	s := &Server{
		port:      cfg.Port,
		db:        db,
		cfg:       cfg,
		log:       log,
		validator: validation.New(),
	}

	if cfg.RateLimitRPS > 0 {
		s.limiter = ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
		log.Info("rate limiting enabled", "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Close releases what the server started on its own. The database pool is
// owned by the caller.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

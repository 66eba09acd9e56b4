package ops

import (
	"net/http"
	"os"

	"schoolmap/internal"
	"schoolmap/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the ops/admin HTTP server: health probes and pprof, kept off
// the public router.
type Server struct {
	router *chi.Mux
	cfg    *config.Config
	logger *internal.Logger
}

// NewServer creates the ops server
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: internal.DefaultLogger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/readyz", s.handleReady)
	s.router.Mount("/debug", middleware.Profiler())

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the ops server
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting ops server on http://%s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleReady reports whether the schools data file is present. A missing
// file is not fatal to the service, so this stays a 200 with a degraded
// marker rather than a failing probe.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	dataFile := "present"
	if _, err := os.Stat(s.cfg.SchoolsDataPath()); err != nil {
		dataFile = "missing"
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","data_file":"` + dataFile + `"}`))
}

package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexiusacademia/gosite/internal/history"
	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

//go:embed static
var staticFiles embed.FS

// ShutdownTimeout bounds how long in-flight requests may finish after the context ends
const ShutdownTimeout = 5 * time.Second

// Options configures a Server
type Options struct {
	RateLimit float64 // requests per second per client
	Burst     int
	Logger    *log.Logger
}

// Server is the web front end: an HTML form page plus the JSON API behind it
type Server struct {
	soil    *soil.Model
	rec     *history.Recorder
	limiter *IPRateLimiter
	logger  *log.Logger
	handler http.Handler
}

// New builds the server. A nil recorder disables history.
func New(model *soil.Model, rec *history.Recorder, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "gosite ", log.LstdFlags)
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5
	}
	if opts.Burst < 1 {
		opts.Burst = 10
	}

	s := &Server{
		soil:    model,
		rec:     rec,
		limiter: NewIPRateLimiter(rate.Limit(opts.RateLimit), opts.Burst),
		logger:  opts.Logger,
	}
	s.handler = withCORS(withRequestID(withLogging(s.logger, withRecovery(s.logger, s.routes()))))
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.limiter.LimitMiddleware)

	api.HandleFunc("/tables", s.handleTables).Methods("GET")
	api.HandleFunc("/wind/subtypes/{category}", s.handleSubtypes).Methods("GET")
	api.HandleFunc("/wind/compute", s.handleWindCompute).Methods("POST")
	api.HandleFunc("/wind/report", s.handleWindReport).Methods("POST")
	api.HandleFunc("/soil/analyze", s.handleSoilAnalyze).Methods("POST")
	api.HandleFunc("/soil/report", s.handleSoilReport).Methods("POST")

	sub, _ := fs.Sub(staticFiles, "static")
	r.PathPrefix("/").Handler(http.FileServer(http.FS(sub))).Methods("GET")
	return r
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

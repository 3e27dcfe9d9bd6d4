// Package api serves the tracker's state and history over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/mo"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/tracker"
)

// Backend is the part of *tracker.Tracker the API reads from.
type Backend interface {
	Current(ctx context.Context) (mo.Option[player.Status], error)
	State(ctx context.Context) (tracker.State, error)
	History(ctx context.Context) ([]history.Entry, error)
	Delete(ctx context.Context, path string, removeFile bool) error
	Clear(ctx context.Context) error
}

type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	handler    *Handler
}

func New(addr string, backend Backend) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		handler: NewHandler(backend),
	}

	s.router.Use(CORSMiddleware)
	s.router.Use(LoggingMiddleware)
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handler.Health)
		r.Get("/status", s.handler.Status)

		r.Get("/history", s.handler.GetHistory)
		r.Delete("/history", s.handler.DeleteHistory)
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	log.Infof("starting api on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down api")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

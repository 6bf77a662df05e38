package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/notice_pipeline/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewRouter(intakeHandler *IntakeHandler, noticesHandler *NoticesHandler, documentsHandler *DocumentsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/intake", func(r chi.Router) {
			r.Post("/staging", intakeHandler.Stage)
			r.Post("/compression", intakeHandler.Compress)
			r.Post("/extraction", intakeHandler.Extract)
		})

		r.Post("/notices", noticesHandler.PublishNotice)
		r.Get("/notices/{department}", noticesHandler.GetNoticesByDepartment)
		r.Get("/notices/{department}/export.csv", noticesHandler.ExportNotices)

		r.Post("/documents/signed-url", documentsHandler.SignedURL)
	})

	return r
}

func NewServer(cfg config.HTTP, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      handler,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

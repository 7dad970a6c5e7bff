package rest

import (
	"context"
	"fmt"
	"listing-portal/internal/core/domain"
	core_port "listing-portal/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers - все входящие обработчики портала.
type Handlers struct {
	Admin *AdminHandler
	Agent *AgentHandler
	Auth  *AuthHandler
	Guard *SessionGuard
}

// NewRouter собирает роуты портала. Вынесен отдельно, чтобы тесты работали без сети.
func NewRouter(h Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", h.Auth.Home)

	// Сессию передает страница логина, которая может жить на другом origin.
	r.Route("/auth", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Post("/session", h.Auth.CreateSession)
		r.Get("/logout", h.Auth.Logout)
		r.Post("/logout", h.Auth.Logout)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.Guard.RequireRole(domain.RoleAdmin, "Access Denied: Admins Only"))

		r.Get("/listings", h.Admin.ListPending)
		r.Post("/listings/{id}/approve", h.Admin.Approve)
		r.Post("/listings/{id}/reject", h.Admin.Reject)
	})

	r.Route("/agent", func(r chi.Router) {
		r.Use(h.Guard.RequireRole(domain.RoleAgent, "Access Denied: Agents Only"))

		r.Get("/dashboard", h.Agent.Dashboard)
		r.Get("/properties/new", h.Agent.NewPropertyForm)
		r.Post("/properties", h.Agent.CreateProperty)
	})

	return r
}

// Server - веб-сервер портала.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string, handler http.Handler, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger.WithFields(core_port.Fields{"component": "rest_server"}),
	}
}

// Start блокирует до остановки сервера.
func (s *Server) Start() error {
	s.logger.Info("Starting portal web server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping portal web server...", nil)
	return s.httpServer.Shutdown(ctx)
}

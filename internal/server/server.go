package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/export"
	"github.com/jonathan/resume-nest/internal/server/middleware"
	"github.com/jonathan/resume-nest/internal/server/ratelimit"
	"github.com/jonathan/resume-nest/internal/types"
)

// Transformer applies AI text actions and never fails.
type Transformer interface {
	Transform(ctx context.Context, text string, action types.AIAction, background string) string
}

// Exporter prints resume data. Result.Printed is false when no printer is available.
type Exporter interface {
	ExportData(ctx context.Context, data types.ResumeData, t types.TemplateType) (export.Result, error)
}

// Deps are the collaborators the server is built from.
type Deps struct {
	Store       Store
	Transformer Transformer
	Exporter    Exporter
}

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	store           Store
	transformer     Transformer
	exporter        Exporter
	rateLimiter     *ratelimit.Limiter
	jwtService      *JWTService
	userService     *UserService
	resumes         *ResumeService
	authHandler     *AuthHandler
	validate        *validator.Validate
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New creates a new server instance
func New(cfg *config.Config, deps Deps, logger *slog.Logger) (*Server, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if logger == nil {
		logger = slog.Default()
	}

	passwordConfig, err := config.NewPasswordConfig(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		store:           deps.Store,
		transformer:     deps.Transformer,
		exporter:        deps.Exporter,
		rateLimiter:     ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit)),
		jwtService:      NewJWTService(jwtConfig),
		resumes:         NewResumeService(deps.Store),
		validate:        newValidator(),
		logger:          logger,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	s.userService = NewUserService(deps.Store, passwordConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, logger)

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	authed := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /templates", s.handleTemplates)
	mux.HandleFunc("POST /render", s.handleRender)
	mux.HandleFunc("POST /export", s.handleExport)

	// Auth
	mux.HandleFunc("POST /auth/signup", s.authHandler.Signup)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /auth/me", authed(s.authHandler.Me))

	// AI text actions
	mux.Handle("POST /ai/transform", authed(s.handleTransform))

	// Resumes, always scoped to the token's user
	mux.Handle("POST /resumes", authed(s.handleCreateResume))
	mux.Handle("GET /resumes", authed(s.handleListResumes))
	mux.Handle("GET /resumes/{id}", authed(s.handleGetResume))
	mux.Handle("PUT /resumes/{id}", authed(s.handleUpdateResume))
	mux.Handle("DELETE /resumes/{id}", authed(s.handleDeleteResume))
	mux.Handle("GET /resumes/{id}/render", authed(s.handleRenderResume))
	mux.Handle("GET /resumes/{id}/export", authed(s.handleExportResume))

	s.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.Server.CORSOrigins),
		ratelimit.Middleware(s.rateLimiter, logger),
		maxBody(cfg.Server.MaxBodyBytes),
	)(mux)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.Close()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.Close()

	s.logger.Info("server stopped")
	return nil
}

// Close releases background resources. The store is owned by the caller.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

// handleHealth reports liveness and store reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger.WarnContext(r.Context(), "health check failed", slog.String("error", err.Error()))
		jsonResponse(w, s.logger, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	jsonResponse(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// maxBody caps request body size.
func maxBody(limit int64) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"portfolio/internal/api/handlers"
	"portfolio/internal/api/middleware"
	"portfolio/internal/config"
	"portfolio/internal/contact"
	"portfolio/internal/logging"
	"portfolio/internal/mail"
	"portfolio/internal/server/routes"

	"github.com/gin-gonic/gin"
)

// ErrPortInUse is returned by Start when the listen port is taken
var ErrPortInUse = errors.New("port already in use")

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router    *gin.Engine
	handler   http.Handler
	cfg       *config.Config
	logger    *logging.Logger
	transport *mail.Transport
}

// NewServer wires handlers for the given relay transport. The transport is
// fixed for the lifetime of the server.
func NewServer(cfg *config.Config, transport *mail.Transport, logger *logging.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	// Gin's own logger is replaced by middleware.RequestLogger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.RedirectTrailingSlash = false

	// Only the socket peer is trusted unless proxies are configured
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if transport == nil {
		transport = mail.Disabled()
	}

	s := &Server{
		router:    router,
		handler:   normalizePath(router),
		cfg:       cfg,
		logger:    logger,
		transport: transport,
	}

	routes.SetupGlobalMiddleware(router, cfg, logger)
	routes.Setup(router, &routes.Handlers{
		Contact: handlers.NewContactHandler(contact.NewService(transport, logger), logger),
		Health:  handlers.NewHealthHandler(transport),
	}, &routes.Middleware{
		ContactRateLimit: middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		}),
	}, logger)

	return s, nil
}

// Handler is the root handler: the router behind path normalization
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the configured port and serves until ctx is cancelled.
// A taken port yields ErrPortInUse.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %d", ErrPortInUse, s.cfg.Port)
		}
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is cancelled, then shuts down
// gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Leaves room for a slow relay on top of reading the request
		WriteTimeout: 30*time.Second + s.cfg.Mail.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	s.logBanner(ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	}
}

func (s *Server) logBanner(addr net.Addr) {
	credential := "Not configured"
	if s.cfg.Mail.HasCredential() {
		credential = "Configured"
	}
	relay := "Not configured (test mode)"
	if s.transport.Configured() {
		relay = "Ready"
	}

	s.logger.Info("==================================================")
	s.logger.Info("SERVER STARTED SUCCESSFULLY")
	s.logger.Info("Running on: %s", addr)
	s.logger.Info("Email user: %s", s.cfg.Mail.User)
	s.logger.Info("Email password: %s", credential)
	s.logger.Info("SMTP status: %s", relay)
	s.logger.Info("==================================================")
}

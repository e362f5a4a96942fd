package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"tickline-hq/keystone/pkg/telemetry/health"
)

// MetricsPath is where the telemetry handler serves Prometheus metrics.
const MetricsPath = "/metrics"

// Defaults for Config fields left zero.
const (
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
)

// Config configures the telemetry server.
type Config struct {
	// ListenAddress is "host:port"; port 0 picks a free port.
	ListenAddress string

	// TLS, when set, serves HTTPS with this configuration.
	TLS *tls.Config

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server serves metrics and health endpoints until its context ends.
type Server struct {
	config     Config
	handler    http.Handler
	logger     *slog.Logger
	httpServer *http.Server
	listener   net.Listener

	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewTelemetryHandler routes MetricsPath to metrics and registers the
// liveness and readiness endpoints of checker.
func NewTelemetryHandler(metrics http.Handler, checker *health.Checker) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, metrics)
	health.Register(mux, checker)
	return mux
}

// New creates a server for handler. A nil logger means slog.Default().
func New(cfg Config, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Server{
		config:  cfg,
		handler: handler,
		logger:  logger,
	}
}

// Listen binds the listen address and returns the bound address. Serve
// must follow.
func (s *Server) Listen() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil, fmt.Errorf("server is already listening on %s", s.listener.Addr())
	}
	ln, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %q: %w", s.config.ListenAddress, err)
	}
	if s.config.TLS != nil {
		ln = tls.NewListener(ln, s.config.TLS)
	}
	s.listener = ln
	return ln.Addr(), nil
}

// Serve blocks until ctx is done, then shuts the server down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	if s.listener == nil {
		s.mu.Unlock()
		return errors.New("server is not listening")
	}
	if s.isRunning {
		s.mu.Unlock()
		return errors.New("server is already running")
	}
	s.isRunning = true
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	ln := s.listener
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting telemetry server",
			"address", ln.Addr().String(),
			"tls_enabled", s.config.TLS != nil,
		)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.WithoutCancel(ctx))
	case err := <-errChan:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return err
	}
}

// Start is Listen followed by Serve.
func (s *Server) Start(ctx context.Context) error {
	if _, err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Shutdown gracefully stops the server. Only the first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("telemetry server stopped")
	})

	return shutdownErr
}

// IsRunning returns true while Serve is serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

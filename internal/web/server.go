// Package web hosts the browser-facing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/taskgate/taskgate/internal/platform/timeouts"
	"github.com/taskgate/taskgate/internal/storage"
	module "github.com/taskgate/taskgate/internal/web/module"
	"github.com/taskgate/taskgate/internal/web/modules"
	"github.com/taskgate/taskgate/internal/web/platform/authctx"
	"github.com/taskgate/taskgate/internal/web/platform/httpx"
	"github.com/taskgate/taskgate/internal/web/platform/observability"
	webstatic "github.com/taskgate/taskgate/internal/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Users    storage.UserStore
	Tasks    storage.TaskStore
	Sessions storage.SessionStore
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
//
// Every request passes the access gate before reaching module routes; static
// assets are mounted outside the gated mux but remain gate-exempt paths.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Users == nil || cfg.Tasks == nil || cfg.Sessions == nil {
		return nil, errors.New("storage is not configured")
	}
	resolveIdentity := authctx.SessionIdentity(cfg.Sessions)
	deps := module.Dependencies{
		Users:           cfg.Users,
		Tasks:           cfg.Tasks,
		Sessions:        cfg.Sessions,
		ResolveIdentity: resolveIdentity,
	}

	mux := http.NewServeMux()
	for _, m := range modules.Default() {
		m.Register(mux, deps)
	}

	rootMux := http.NewServeMux()
	rootMux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle("/", mux)

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.TraceRequests(),
		httpx.RequestLogger(log.Default()),
		requestGate(resolveIdentity),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}

// Package web provides the HTTP sum calculator.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/evcraddock/treehouse/internal/logging"
)

// DefaultAddr is where the calculator listens unless configured otherwise.
const DefaultAddr = "127.0.0.1:3000"

const shutdownTimeout = 10 * time.Second

const indexHTML = `<!DOCTYPE html>
<title>Sum Calculator</title>
<form action="/sum" method="post">
    <input type="text" name="n" />
    <input type="text" name="m" />
    <button type="submit">Compute sum</button>
</form>
`

// Server is the sum calculator HTTP server.
type Server struct {
	index   *template.Template
	metrics *metrics
	handler http.Handler
}

// NewServer creates a calculator server with its own metrics registry.
func NewServer() *Server {
	reg := prometheus.NewRegistry()

	s := &Server{
		index:   template.Must(template.New("index").Parse(indexHTML)),
		metrics: newMetrics(reg),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /sum", s.handleSum)
	mux.HandleFunc("POST /api/sum", s.apiSum)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	s.handler = logging.RequestLogger(mux)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe binds addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	fmt.Printf("App running at http://%s\n", ln.Addr())
	slog.Info("server.start", "addr", ln.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("server.stop")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server.fail", "err", err)
		return err
	}
	slog.Info("server.stopped")
	return nil
}

// Package server exposes the final loot state over read-only HTTP.
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/LootContainers_Go/internal/handler"
	"github.com/osse101/LootContainers_Go/internal/logger"
	"github.com/osse101/LootContainers_Go/internal/metrics"
)

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server. Request contexts derive from ctx, so they
// carry its run id.
func NewServer(ctx context.Context, addr, version string, items handler.ItemLister, containers handler.ContainerLister) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(version, items, containers),
			ReadHeaderTimeout: ReadHeaderTimeout,
			BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
		},
	}
}

// NewRouter builds the route table
func NewRouter(version string, items handler.ItemLister, containers handler.ContainerLister) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion(version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items", handler.HandleListItems(items))
		r.Get("/containers", handler.HandleListContainers(containers))
		r.Get("/containers/{"+handler.URLParamName+"}", handler.HandleGetContainer(containers))
	})

	return r
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

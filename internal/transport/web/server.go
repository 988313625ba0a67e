package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/EgorLis/media-vault/internal/config"
	"github.com/EgorLis/media-vault/internal/transport/web/v1/health"
	"github.com/EgorLis/media-vault/internal/transport/web/v1/media"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, d Deps) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	mediaLog := log.New(logger.Writer(), logger.Prefix()+"[media] ", logger.Flags())

	var storagePing health.Pinger
	if d.Storage != nil {
		storagePing = d.Storage
	}
	healthHandler := &health.Handler{Log: healthLog, DB: d.Repo, Cache: d.Cache, Storage: storagePing}
	mediaHandler := &media.Handler{
		Log:            mediaLog,
		Repo:           d.Repo,
		Cache:          d.Cache,
		Guard:          d.Guard,
		Secret:         cfg.AdminSecret,
		MaxUploadBytes: cfg.MaxUploadBytes,
		ListTTL:        60,
		MetaTTL:        300,
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(healthHandler, mediaHandler, cfg.MaxUploadBytes, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}

package web

import (
	"log"
	"net/http"

	_ "github.com/EgorLis/media-vault/internal/docs"
	"github.com/EgorLis/media-vault/internal/transport/web/mw"
	"github.com/EgorLis/media-vault/internal/transport/web/v1/health"
	"github.com/EgorLis/media-vault/internal/transport/web/v1/media"
	httpSwagger "github.com/swaggo/http-swagger"
)

func newRouter(hh *health.Handler, mh *media.Handler, maxUpload int64, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// media
	mux.HandleFunc("GET /v1/media", mh.List)
	mux.HandleFunc("POST /v1/media", limitBody(maxUpload, mh.Upload))
	mux.HandleFunc("GET /v1/media/{id}/stream", mh.Stream)
	mux.HandleFunc("GET /v1/media/{id}/download", mh.Download)
	mux.HandleFunc("PATCH /v1/media/{id}", mh.Rename)
	mux.HandleFunc("DELETE /v1/media/{id}", mh.Delete)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}

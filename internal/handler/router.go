package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chatHandler "github.com/syncailabs/mitra-backend/internal/handler/chat"
	middlewarePkg "github.com/syncailabs/mitra-backend/internal/middleware"
)

// NewRouter wires HTTP routes to the dialogue engine.
func NewRouter(chat *chatHandler.Handler, chatWS *chatHandler.WebSocketHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		chat.RegisterRoutes(api)
		chatWS.RegisterRoutes(api)
	})

	return r
}

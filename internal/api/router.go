package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/basecamp-gear/outfitter/internal/config"
	"github.com/basecamp-gear/outfitter/internal/events"
	"github.com/basecamp-gear/outfitter/internal/outfit"
	"github.com/basecamp-gear/outfitter/internal/scoring"
	"github.com/basecamp-gear/outfitter/internal/store"
)

func NewRouter(s store.Store, ev events.Client, scorer *scoring.Scorer, selector outfit.Selector, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	rank := NewRankHandler(s, ev, scorer, selector, cfg.Scoring.FrontierEnabled)
	products := NewProductsHandler(s, ev)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rank", rank.Rank)
		r.Get("/rankings/{id}", rank.GetRanking)
		r.Post("/outfit", rank.Outfit)

		r.Get("/products", products.List)
		r.Get("/products/{id}", products.Get)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Post("/products", products.Create)
			r.Delete("/products/{id}", products.Delete)
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

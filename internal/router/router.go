package router

import (
	"log"
	"net/http"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/fruit-order/api/internal/config"
	"github.com/fruit-order/api/internal/handler"
	"github.com/fruit-order/api/internal/metrics"
	mw "github.com/fruit-order/api/internal/middleware"
	"github.com/fruit-order/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up.
// Everything except /health and /metrics runs inside a cookie session.
func New(cfg *config.Config, cat *catalog.Catalog, sessions mw.SessionStore, hub *ws.Hub, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})
	r.Handle("/metrics", m.Handler())

	// Session-scoped routes
	r.Group(func(r chi.Router) {
		r.Use(mw.Session(cfg.SessionSecret, sessions))

		// HTML views
		pageHandler := handler.NewPageHandler(cat, hub, m)
		pageHandler.RegisterRoutes(r)

		// Live updates for open admin pages
		r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWS(hub, w, r)
		})

		// JSON API
		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   cfg.AllowedOrigins,
				AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: true,
				MaxAge:           300, // 5 minutes
			}))

			catalogHandler := handler.NewCatalogHandler(cat)
			r.Route("/catalog", catalogHandler.RegisterRoutes)

			sessionHandler := handler.NewSessionHandler()
			sessionHandler.RegisterRoutes(r)

			orderHandler := handler.NewOrderHandler(cat, hub, m)
			r.Route("/orders", orderHandler.RegisterRoutes)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}

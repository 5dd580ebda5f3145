package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nf-demos/go_backend/internal/app/config"
	"nf-demos/go_backend/internal/app/http/handlers"
	"nf-demos/go_backend/internal/app/http/middleware"
	"nf-demos/go_backend/internal/infra/db/postgres"
)

func NewRouter(cfg config.Config, db *postgres.DB) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(db, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {

		r.Get("/products", h.ListProducts)
		r.Get("/services", h.ListServices)
		r.Get("/zones", h.ListZones)
		r.Post("/contact", h.CreateContact)

		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/quotes", h.CreateQuote)
			r.Post("/service-quotes", h.ServiceQuote)
		})
	})

	return r
}

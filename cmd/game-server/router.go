package main

import (
	"expvar"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"plinko-casino/internal/app/betting"
)

func newRouter(svc *betting.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/ready", readyHandler())

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Post("/play", playHandler(svc))
		r.Get("/balance/{account_id}", balanceHandler(svc))
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)
	})
	return r
}

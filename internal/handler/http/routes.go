package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// liveness, never touches the node
	router.Get("/", h.liveness)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/stamps/{batch_id}", h.getStamp)
		r.Get("/wallet", h.getWallet)
		r.Get("/chequebook/address", h.getChequebook)
	})

	return router
}

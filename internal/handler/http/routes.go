package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/personal-server/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/ping", h.ping)
	router.Get("/version", h.getServerVersion)

	router.Post("/run", h.run)

	router.Route("/notes", func(r chi.Router) {
		r.Get("/", h.listNotes)
		r.Get("/{noteID}", h.getNote)
		r.Post("/", h.createNote)
	})

	router.Route("/transactions", func(r chi.Router) {
		r.Get("/", h.listTransactions)
		r.Post("/", h.createTransaction)
	})

	router.Post("/scrape", h.scrape)
	router.Get("/scrapes", h.listScrapes)

	router.Route("/weights", func(r chi.Router) {
		r.Get("/", h.listWeights)
		r.Post("/", h.createWeight)
	})

	// unmatched paths and wrong methods both get the JSON 404 envelope
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
}

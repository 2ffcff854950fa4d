package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

func (h *Handler) scrape(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	record, err := h.services.Scrapes.ScrapePage(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("error scraping page")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.ScrapeResponse{OK: true, Scrape: record})
}

func (h *Handler) listScrapes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.Scrapes.ListScrapes(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing scrapes")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.ScrapeListResponse{OK: true, Scrapes: records})
}

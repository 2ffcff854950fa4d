package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

func (h *Handler) createWeight(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.WeightPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	record, err := h.services.Weights.LogWeight(r.Context(), payload)
	if err != nil {
		log.Err(err).Msg("error logging weight")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.WeightResponse{OK: true, Weight: record})
}

func (h *Handler) listWeights(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.Weights.ListWeights(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing weights")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.WeightListResponse{OK: true, Weights: records})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	single, sequence, err := h.services.Commands.Run(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("error running command")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	if sequence != nil {
		writeJSON(w, http.StatusOK, sequence)
		return
	}
	writeJSON(w, http.StatusOK, single)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.TransactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	record, err := h.services.Transactions.LogTransaction(r.Context(), payload)
	if err != nil {
		log.Err(err).Msg("error logging transaction")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.TransactionResponse{OK: true, Transaction: record})
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.Transactions.ListTransactions(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing transactions")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.TransactionListResponse{OK: true, Transactions: records})
}

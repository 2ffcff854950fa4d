package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	record, err := h.services.Notes.CreateNote(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("error creating note")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.NoteResponse{OK: true, Note: record})
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.Notes.ListNotes(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing notes")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.NoteListResponse{OK: true, Notes: records})
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	document, err := h.services.Notes.GetNote(r.Context(), chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Msg("error getting note")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.NoteDocumentResponse{OK: true, Note: document})
}

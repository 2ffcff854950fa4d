package http

import (
	"net/http"

	"github.com/MKhiriev/personal-server/models"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.PingResponse{OK: true, Message: "pong"})
}

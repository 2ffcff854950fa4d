package http

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes payload with the standard Content-Type. Encoding
// failures cannot be reported to the client at this point; they only show
// up in the access log's size field.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

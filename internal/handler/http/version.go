package http

import "net/http"

// ServerVersion is stamped by the build (see cmd/server). "N/A" when built
// without ldflags.
var ServerVersion = "N/A"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(ServerVersion))
}

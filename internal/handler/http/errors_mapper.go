package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/personal-server/internal/adapter"
	"github.com/MKhiriev/personal-server/internal/service"
	"github.com/MKhiriev/personal-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNoteNotFound:        http.StatusNotFound,

	adapter.ErrFetchFailed: http.StatusBadGateway,

	store.ErrCreatingDirectory: http.StatusInternalServerError,
	store.ErrOpeningIndex:      http.StatusInternalServerError,
	store.ErrWritingRow:        http.StatusInternalServerError,
	store.ErrReadingIndex:      http.StatusInternalServerError,
	store.ErrHeaderMismatch:    http.StatusInternalServerError,
	store.ErrWritingArtifact:   http.StatusInternalServerError,
	store.ErrArtifactNotFound:  http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

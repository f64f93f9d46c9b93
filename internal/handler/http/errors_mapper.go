package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-column-client/internal/app"
	"github.com/MKhiriev/go-column-client/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	store.ErrColumnOutOfRange:   {http.StatusBadRequest, app.MsgColumnOutOfRange},
	store.ErrNoColumnData:       {http.StatusNotFound, app.MsgNoColumnData},
	store.ErrStorageUnavailable: {http.StatusServiceUnavailable, app.MsgStorageUnavailable},
}

func statusFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func writeError(w http.ResponseWriter, err error) {
	resp := statusFromError(err)
	http.Error(w, resp.message, resp.status)
}

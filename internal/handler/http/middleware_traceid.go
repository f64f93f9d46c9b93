package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-column-client/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request logger carrying trace_id to the request
// context. An incoming X-Trace-ID is reused, otherwise a new time-ordered ID is issued.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).Str("transport", "http")
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

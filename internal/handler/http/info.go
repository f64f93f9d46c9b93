package http

import (
	"net/http"
)

// getServerVersion answers with the bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.ServerInfoService.GetServerInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(info.Version))
}

// getProtocolInfo lets a client operator check the reply capacity and markers
// the TCP listener expects before connecting.
func (h *Handler) getProtocolInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.services.ServerInfoService.GetServerInfo(r.Context()))
}

package http

import (
	"net/http"

	"github.com/MKhiriev/market-proxy/internal/logger"
)

// getServerVersion answers with the proxy version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/market-proxy/internal/adapter"
	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/internal/service"
	"github.com/MKhiriev/market-proxy/internal/utils"
	"github.com/MKhiriev/market-proxy/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrRequestTooLarge:   http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided: http.StatusBadRequest,

	adapter.ErrUpstreamTimeout:       http.StatusGatewayTimeout,
	adapter.ErrUpstreamUnavailable:   http.StatusBadGateway,
	adapter.ErrMalformedUpstreamBody: http.StatusBadGateway,
}

// statusFromError returns the status carried by an *adapter.UpstreamError,
// or the status mapped to the first matching sentinel, or 500.
func statusFromError(err error) int {
	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the message exposed to the caller. Upstream
// failures expose only the fixed per-operation message; client errors
// expose the validation reason.
func detailFromError(err error, status int) string {
	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Message
	}

	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return err.Error()
	}
	return http.StatusText(status)
}

// writeError logs err and answers with {"detail": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	detail := detailFromError(err, status)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(detail)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(detail)
	}

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

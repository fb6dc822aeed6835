package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength caps caller-supplied trace IDs echoed into logs and
	// response headers.
	maxTraceIDLength = 128
)

// withTraceID attaches a request-scoped logger carrying trace_id to the
// request context and echoes the ID in the X-Trace-ID response header. A
// well-formed caller-supplied ID is reused; otherwise a UUID is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !isValidTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func isValidTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		// visible ASCII only
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

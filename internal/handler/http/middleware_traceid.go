package http

import (
	"net/http"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with a trace ID taken from the X-Trace-ID
// header, or a freshly generated one, and attaches a logger carrying it to
// the request context. The ID is echoed in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

package http

import (
	"net"
	"net/http"
	"net/netip"

	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// withRateLimit allows cfg.RateLimit.Requests per client IP within any
// sliding window of cfg.RateLimit.Window. The client IP is r.RemoteAddr,
// rewritten by withRealIP only for requests from a trusted proxy.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.cfg.RateLimit.Requests,
		h.cfg.RateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteJSON(w, models.MessageResponse{Message: msgTooManyRequests}, http.StatusTooManyRequests)
		}),
	)
}

// withRealIP applies middleware.RealIP to requests whose TCP peer lies in
// cfg.TrustedProxies. Forwarding headers from any other peer are ignored, so
// a client cannot pick its own rate limit key.
func (h *Handler) withRealIP() func(http.Handler) http.Handler {
	var trusted []netip.Prefix
	for _, cidr := range h.cfg.TrustedProxies {
		// entries are checked by config validation
		if prefix, err := netip.ParsePrefix(cidr); err == nil {
			trusted = append(trusted, prefix.Masked())
		}
	}

	return func(next http.Handler) http.Handler {
		if len(trusted) == 0 {
			return next
		}

		forwarded := middleware.RealIP(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if fromTrustedProxy(r.RemoteAddr, trusted) {
				forwarded.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func fromTrustedProxy(remoteAddr string, trusted []netip.Prefix) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// withBodyLimit rejects bodies over cfg.BodyLimit bytes. Requests announcing
// a larger Content-Length are refused before the handler runs; others are
// cut off by http.MaxBytesReader and reported by decodeJSON.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	limit := h.cfg.BodyLimit

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			utils.WriteJSON(w, models.MessageResponse{Message: msgBodyTooLarge}, http.StatusRequestEntityTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}

// securityHeaders are set on every response.
var securityHeaders = map[string]string{
	"Content-Security-Policy":      "default-src 'self'",
	"Cross-Origin-Opener-Policy":   "same-origin",
	"Cross-Origin-Resource-Policy": "same-origin",
	"Referrer-Policy":              "no-referrer",
	"Strict-Transport-Security":    "max-age=15552000; includeSubDomains",
	"X-Content-Type-Options":       "nosniff",
	"X-DNS-Prefetch-Control":       "off",
	"X-Frame-Options":              "SAMEORIGIN",
}

func withSecurityHeaders(next http.Handler) http.Handler {
	for key, value := range securityHeaders {
		next = middleware.SetHeader(key, value)(next)
	}
	return next
}

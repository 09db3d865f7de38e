package middleware

import (
	"net/http"
	"strings"
)

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	corsAllowedHeaders = []string{"Content-Type", "Authorization"}
)

type corsMiddleware struct {
	origin string
}

// NewCORSMiddleware allows credentialed browser requests from a single origin.
func NewCORSMiddleware(origin string) *corsMiddleware {
	return &corsMiddleware{
		origin: origin,
	}
}

func (m *corsMiddleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || origin != m.origin {
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", strings.Join(corsAllowedMethods, ", "))
			h.Set("Access-Control-Allow-Headers", strings.Join(corsAllowedHeaders, ", "))
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

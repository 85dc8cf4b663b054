package middleware

import (
	"net/http"
)

func isOriginAllowed(allowedOrigins []string, origin string) bool {
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}
	return false
}

// Cors libera as origens configuradas (CORS_ALLOWED_ORIGINS); "*" libera qualquer origem
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && isOriginAllowed(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With, X-Request-ID")
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Correlation-ID")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

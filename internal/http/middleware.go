package http

import (
	"net/http"
	"strings"
)

// pagePrefixes are the browser-facing routes that load same-origin scripts
// and stylesheets.
var pagePrefixes = []string{"/login", "/holdings", "/static/"}

// SecurityHeaders adds security-related headers to all responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", contentSecurityPolicy(r.URL.Path))

		next.ServeHTTP(w, r)
	})
}

func contentSecurityPolicy(path string) string {
	// Swagger UI needs inline scripts, styles and data images to render
	if strings.HasPrefix(path, "/swagger/") {
		return "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"
	}
	for _, prefix := range pagePrefixes {
		if strings.HasPrefix(path, prefix) {
			return "default-src 'self'; form-action 'self'; frame-ancestors 'none'"
		}
	}
	return "default-src 'none'"
}

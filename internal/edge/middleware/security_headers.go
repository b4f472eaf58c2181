package middleware

import "net/http"

// SecurityHeaders adds security-related HTTP headers to responses.
// The CSP must stay loose enough for the crawler document's inline reload
// hint and tenant images hosted on arbitrary https origins.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Crawler previews may embed the page; allow same-origin framing only
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Enforce HTTPS (only if request is HTTPS)
		if r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline'; " + // inline reload hint + SPA bootstrap
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https:; " + // tenant og:image on any https origin
			"font-src 'self' data:; " +
			"connect-src 'self'; " +
			"base-uri 'self'"
		w.Header().Set("Content-Security-Policy", csp)

		next.ServeHTTP(w, r)
	})
}

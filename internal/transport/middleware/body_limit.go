package middleware

import "net/http"

// BodyLimit caps request bodies at maxBytes. Reading past the cap fails with
// *http.MaxBytesError, which the handlers report as 413.
func BodyLimit(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// RequestID tags the request and response with an X-Request-ID, generating a
// UUID when the inbound request carries none. Proxies that already assign IDs
// keep theirs.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
				r.Header.Set(headerRequestID, id)
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r)
		})
	}
}

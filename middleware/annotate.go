package middleware

import (
	"net/http"

	"github.com/ossguard/headwall"
)

// RemainingFunc reports the externally computed remaining request budget for
// one request. Returning ok=false omits the X-RateLimit-Remaining header.
type RemainingFunc func(r *http.Request) (remaining int, ok bool)

// RateLimit writes the advisory rate-limit headers on every response. The
// annotator holds no counters; remaining may be nil when no external budget
// source exists.
func RateLimit(annotator *headwall.RateLimitAnnotator, remaining RemainingFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sink := headerSink{w.Header()}
			if remaining != nil {
				if n, ok := remaining(r); ok {
					annotator.AnnotateWithRemaining(sink, n)
					next.ServeHTTP(w, r)
					return
				}
			}
			annotator.Annotate(sink)
			next.ServeHTTP(w, r)
		})
	}
}

// BotSignals echoes the edge proxy's CF-Bot-Score and CF-Verified-Bot inbound
// headers onto the response as X-Bot-Score and X-Verified-Bot.
func BotSignals() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headwall.AnnotateBotSignals(headerSink{r.Header}, headerSink{w.Header()})
			next.ServeHTTP(w, r)
		})
	}
}

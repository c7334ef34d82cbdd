package middleware

import (
	"bufio"
	"net"
	"net/http"

	"github.com/ossguard/headwall"
)

// Secure applies the policy's headers to every response. Application is
// deferred until the downstream handler writes its status line or first body
// bytes, so the cache-control rule inspects the Content-Type the handler
// actually chose. Handlers that write nothing still get the full header set.
func Secure(policy *headwall.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &secureWriter{ResponseWriter: w, policy: policy}
			next.ServeHTTP(sw, r)
			sw.applyOnce()
		})
	}
}

// secureWriter intercepts the first write to inject policy headers while the
// header map is still mutable.
type secureWriter struct {
	http.ResponseWriter
	policy  *headwall.Policy
	applied bool
}

func (w *secureWriter) applyOnce() {
	if w.applied {
		return
	}
	w.applied = true
	w.policy.Apply(headerSink{w.Header()})
}

func (w *secureWriter) WriteHeader(status int) {
	w.applyOnce()
	w.ResponseWriter.WriteHeader(status)
}

func (w *secureWriter) Write(b []byte) (int, error) {
	w.applyOnce()
	return w.ResponseWriter.Write(b)
}

// Flush keeps streaming handlers working through the wrapper.
func (w *secureWriter) Flush() {
	w.applyOnce()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack hands the connection to the handler when the underlying writer
// supports it. Headers are the handler's responsibility after a hijack, so the
// policy is not applied to a hijacked response.
func (w *secureWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	w.applied = true
	return h.Hijack()
}

// Push forwards HTTP/2 server push when the underlying writer supports it.
func (w *secureWriter) Push(target string, opts *http.PushOptions) error {
	if p, ok := w.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}
	return http.ErrNotSupported
}

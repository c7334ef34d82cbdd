// Package ginmw adapts the headwall policy engine and annotators to gin.
//
// Secure replaces the context writer with a wrapper that injects the policy
// headers on the first write, so the cache-control suppression rule observes
// the Content-Type the handler actually chose.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ossguard/headwall"
)

// headerSink adapts http.Header to the headwall capabilities.
type headerSink struct {
	h http.Header
}

func (s headerSink) Get(name string) string {
	return s.h.Get(name)
}

func (s headerSink) Set(name, value string) {
	s.h.Set(name, value)
}

type requestSink struct {
	c *gin.Context
}

func (s requestSink) Get(name string) string {
	return s.c.GetHeader(name)
}

// Secure applies the policy's headers to every response. Application is
// deferred until the downstream handler writes its status line or first body
// bytes. Handlers that write nothing still get the full header set.
func Secure(policy *headwall.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		sw := &secureWriter{ResponseWriter: c.Writer, policy: policy}
		c.Writer = sw
		c.Next()
		sw.applyOnce()
	}
}

// secureWriter intercepts the first flush to inject policy headers while the
// header map is still mutable. gin defers the actual header flush past
// WriteHeader (which only records the status), so interception happens at the
// real flush points: WriteHeaderNow and the body writes.
type secureWriter struct {
	gin.ResponseWriter
	policy  *headwall.Policy
	applied bool
}

func (w *secureWriter) applyOnce() {
	if w.applied {
		return
	}
	w.applied = true
	w.policy.Apply(headerSink{w.ResponseWriter.Header()})
}

func (w *secureWriter) WriteHeaderNow() {
	w.applyOnce()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *secureWriter) Write(b []byte) (int, error) {
	w.applyOnce()
	return w.ResponseWriter.Write(b)
}

func (w *secureWriter) WriteString(s string) (int, error) {
	w.applyOnce()
	return w.ResponseWriter.WriteString(s)
}

// RemainingFunc reports the externally computed remaining request budget.
// Returning ok=false omits the X-RateLimit-Remaining header.
type RemainingFunc func(c *gin.Context) (remaining int, ok bool)

// RateLimit writes the advisory rate-limit headers on every response.
func RateLimit(annotator *headwall.RateLimitAnnotator, remaining RemainingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		sink := headerSink{c.Writer.Header()}
		if remaining != nil {
			if n, ok := remaining(c); ok {
				annotator.AnnotateWithRemaining(sink, n)
				c.Next()
				return
			}
		}
		annotator.Annotate(sink)
		c.Next()
	}
}

// BotSignals echoes the edge proxy's bot-scoring headers onto the response.
func BotSignals() gin.HandlerFunc {
	return func(c *gin.Context) {
		headwall.AnnotateBotSignals(requestSink{c}, headerSink{c.Writer.Header()})
		c.Next()
	}
}

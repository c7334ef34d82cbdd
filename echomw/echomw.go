// Package echomw adapts the headwall policy engine and annotators to echo.
//
// Secure registers a Response.Before hook, so policy headers are injected just
// before the first write and the cache-control suppression rule observes the
// Content-Type the handler actually chose.
package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

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

// Secure applies the policy's headers to every response.
func Secure(policy *headwall.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			res.Before(func() {
				policy.Apply(headerSink{res.Header()})
			})
			return next(c)
		}
	}
}

// RemainingFunc reports the externally computed remaining request budget.
// Returning ok=false omits the X-RateLimit-Remaining header.
type RemainingFunc func(c echo.Context) (remaining int, ok bool)

// RateLimit writes the advisory rate-limit headers on every response.
func RateLimit(annotator *headwall.RateLimitAnnotator, remaining RemainingFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sink := headerSink{c.Response().Header()}
			if remaining != nil {
				if n, ok := remaining(c); ok {
					annotator.AnnotateWithRemaining(sink, n)
					return next(c)
				}
			}
			annotator.Annotate(sink)
			return next(c)
		}
	}
}

// BotSignals echoes the edge proxy's bot-scoring headers onto the response.
func BotSignals() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			headwall.AnnotateBotSignals(
				headerSink{c.Request().Header},
				headerSink{c.Response().Header()},
			)
			return next(c)
		}
	}
}

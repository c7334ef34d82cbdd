package middleware

import "net/http"

// headerSink adapts http.Header to the headwall request/response capabilities.
// http.Header.Get and Set already canonicalize names, which provides the
// case-insensitive lookup the engine expects.
type headerSink struct {
	h http.Header
}

func (s headerSink) Get(name string) string {
	return s.h.Get(name)
}

func (s headerSink) Set(name, value string) {
	s.h.Set(name, value)
}

// Package middleware exposes net/http adapters for the headwall policy engine
// and its annotators.
//
// # Handlers
//
//   - [Secure] — applies a built [headwall.Policy] to every response.
//   - [RateLimit] — writes the advisory X-RateLimit-* headers.
//   - [BotSignals] — echoes edge-proxy bot scores onto the response.
//   - [RequestID] — tags request and response with an X-Request-ID.
//
// Secure defers header application until the downstream handler first writes,
// so the cache-control suppression rule sees the final outbound Content-Type.
// None of the handlers ever rejects or short-circuits a request.
//
// # Architecture boundaries
//
// This package translates http.Header into the headwall sink capabilities. It
// makes no policy decisions itself — all rendering lives in the root package.
package middleware

// Package headwall provides a configuration-driven HTTP security response-header
// policy engine: HSTS, Content-Security-Policy, frame and content-type sniffing
// protections, Referrer-Policy, Permissions-Policy, the Cross-Origin isolation
// headers, and cache-control hardening for dynamic content.
//
// The package is designed for concurrent server workloads: a [Policy] is built
// once through [Builder.Build], is immutable afterwards, and may be applied from
// any number of goroutines with no coordination. Apply never fails, never blocks,
// and never touches the response body.
//
// # Architecture boundaries
//
// headwall is the public surface. It exposes [Policy], [Builder], [Config],
// [Options], and the two header annotators ([RateLimitAnnotator] and
// [AnnotateBotSignals]). The engine depends only on the [RequestHeaders] and
// [ResponseHeaders] capabilities; translation to concrete frameworks lives in
// the middleware, ginmw, and echomw packages.
//
// # What this package must NOT do
//
//   - Import any HTTP framework (net/http included) — adapters own that.
//   - Hold per-request state, counters, or caches of any kind.
//   - Short-circuit, fail, or otherwise interfere with request processing.
//
// # Performance contract
//
// Apply is the hot path. All static header values are rendered once at build
// time; a call to Apply performs only header map writes plus one substring scan
// of the outbound Content-Type.
package headwall

package headwall

// RequestHeaders is the read capability a host framework provides for inbound
// request headers. Lookups are expected to be case-insensitive, matching HTTP
// header semantics.
type RequestHeaders interface {
	Get(name string) string
}

// ResponseHeaders is the read/write capability for the outbound header map.
// Set replaces any existing value for the name — the engine never appends, so
// applying a policy twice yields the same final header set as applying it once.
type ResponseHeaders interface {
	Get(name string) string
	Set(name, value string)
}

// Response header names emitted by the engine and annotators. These names and
// their value syntax are the compatibility surface consumed by browsers and
// edge proxies; they must not be altered.
const (
	HeaderStrictTransportSecurity = "Strict-Transport-Security"
	HeaderContentSecurityPolicy   = "Content-Security-Policy"
	HeaderXFrameOptions           = "X-Frame-Options"
	HeaderXContentTypeOptions     = "X-Content-Type-Options"
	HeaderXXSSProtection          = "X-XSS-Protection"
	HeaderReferrerPolicy          = "Referrer-Policy"
	HeaderPermissionsPolicy       = "Permissions-Policy"
	HeaderCrossOriginEmbedder     = "Cross-Origin-Embedder-Policy"
	HeaderCrossOriginOpener       = "Cross-Origin-Opener-Policy"
	HeaderCrossOriginResource     = "Cross-Origin-Resource-Policy"
	HeaderCacheControl            = "Cache-Control"
	HeaderPragma                  = "Pragma"
	HeaderExpires                 = "Expires"
	HeaderContentType             = "Content-Type"

	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitWindow    = "X-RateLimit-Window"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderCFCacheStatus      = "CF-Cache-Status"

	HeaderCFBotScore    = "CF-Bot-Score"
	HeaderCFVerifiedBot = "CF-Verified-Bot"
	HeaderBotScore      = "X-Bot-Score"
	HeaderVerifiedBot   = "X-Verified-Bot"
)

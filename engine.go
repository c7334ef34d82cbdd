package headwall

import (
	"strconv"
	"strings"
)

// Policy is the resolved header policy engine. It is built once through
// [Builder.Build], renders all static header values at build time, and is
// immutable and safe for concurrent use afterwards.
type Policy struct {
	cfg Config

	hstsValue        string
	cspValue         string
	permissionsValue string
}

func newPolicy(cfg Config) *Policy {
	return &Policy{
		cfg:              cfg,
		hstsValue:        formatHSTS(cfg.HSTS),
		cspValue:         formatCSP(cfg.CSP),
		permissionsValue: formatPermissionsPolicy(cfg.PermissionsPolicy),
	}
}

// Config returns a copy of the resolved configuration the policy was built
// from. The policy itself cannot be changed through the returned value.
func (p *Policy) Config() Config {
	return cloneConfig(p.cfg)
}

// Apply writes the policy's headers to the response. It inspects the outbound
// Content-Type already present on the response to decide whether the
// cache-control trio applies; everything else is a fixed Set. Apply never
// fails, writes nothing but headers, and never short-circuits the request.
func (p *Policy) Apply(h ResponseHeaders) {
	if p.hstsValue != "" {
		h.Set(HeaderStrictTransportSecurity, p.hstsValue)
	}
	if p.cspValue != "" {
		h.Set(HeaderContentSecurityPolicy, p.cspValue)
	}
	if p.cfg.XFrameOptions != "" {
		h.Set(HeaderXFrameOptions, p.cfg.XFrameOptions)
	}
	if p.cfg.XContentTypeOptions != "" {
		h.Set(HeaderXContentTypeOptions, p.cfg.XContentTypeOptions)
	}
	if p.cfg.XXSSProtection != "" {
		h.Set(HeaderXXSSProtection, p.cfg.XXSSProtection)
	}
	if p.cfg.ReferrerPolicy != "" {
		h.Set(HeaderReferrerPolicy, p.cfg.ReferrerPolicy)
	}
	if p.permissionsValue != "" {
		h.Set(HeaderPermissionsPolicy, p.permissionsValue)
	}
	if p.cfg.CrossOrigin.EmbedderPolicy != "" {
		h.Set(HeaderCrossOriginEmbedder, p.cfg.CrossOrigin.EmbedderPolicy)
	}
	if p.cfg.CrossOrigin.OpenerPolicy != "" {
		h.Set(HeaderCrossOriginOpener, p.cfg.CrossOrigin.OpenerPolicy)
	}
	if p.cfg.CrossOrigin.ResourcePolicy != "" {
		h.Set(HeaderCrossOriginResource, p.cfg.CrossOrigin.ResourcePolicy)
	}
	if p.cfg.CacheControl != "" && !isStaticAssetContentType(h.Get(HeaderContentType)) {
		h.Set(HeaderCacheControl, p.cfg.CacheControl)
		h.Set(HeaderPragma, "no-cache")
		h.Set(HeaderExpires, "0")
	}
}

// isStaticAssetContentType classifies the outbound Content-Type by substring
// match, not MIME parsing. Static assets keep whatever caching a prior handler
// chose; everything else gets the no-store trio.
func isStaticAssetContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	for _, marker := range []string{"image", "font", "css", "javascript"} {
		if strings.Contains(contentType, marker) {
			return true
		}
	}
	return false
}

/*
====================================
HEADER VALUE RENDERING
====================================
*/

func formatHSTS(c HSTSConfig) string {
	if !c.Enabled {
		return ""
	}
	var b strings.Builder
	b.WriteString("max-age=")
	b.WriteString(strconv.Itoa(c.MaxAgeSeconds))
	if c.IncludeSubDomains {
		b.WriteString("; includeSubDomains")
	}
	if c.Preload {
		b.WriteString("; preload")
	}
	return b.String()
}

// formatCSP renders directives in the fixed declaration order. Empty source
// lists are omitted entirely; upgrade-insecure-requests renders bare.
func formatCSP(c CSPConfig) string {
	if !c.Enabled {
		return ""
	}
	d := c.Directives
	ordered := []struct {
		name    string
		sources []string
	}{
		{"default-src", d.DefaultSrc},
		{"script-src", d.ScriptSrc},
		{"style-src", d.StyleSrc},
		{"img-src", d.ImgSrc},
		{"font-src", d.FontSrc},
		{"connect-src", d.ConnectSrc},
		{"frame-src", d.FrameSrc},
		{"object-src", d.ObjectSrc},
		{"base-uri", d.BaseURI},
		{"form-action", d.FormAction},
		{"frame-ancestors", d.FrameAncestors},
	}

	parts := make([]string, 0, len(ordered)+1)
	for _, dir := range ordered {
		if len(dir.sources) == 0 {
			continue
		}
		parts = append(parts, dir.name+" "+strings.Join(dir.sources, " "))
	}
	if d.UpgradeInsecureRequests {
		parts = append(parts, "upgrade-insecure-requests")
	}
	return strings.Join(parts, "; ")
}

// formatPermissionsPolicy preserves the declaration order of the feature list.
// An empty origin list renders as "()", blocking the feature everywhere.
func formatPermissionsPolicy(directives PermissionsPolicy) string {
	if len(directives) == 0 {
		return ""
	}
	parts := make([]string, 0, len(directives))
	for _, d := range directives {
		parts = append(parts, d.Feature+"=("+strings.Join(d.AllowedOrigins, " ")+")")
	}
	return strings.Join(parts, ", ")
}

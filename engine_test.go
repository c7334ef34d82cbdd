package headwall

import (
	"fmt"
	"testing"
)

// headerMap is the test double for the response header capability. Set
// overwrites, mirroring http.Header.Set semantics.
type headerMap map[string]string

func (m headerMap) Get(name string) string { return m[name] }
func (m headerMap) Set(name, value string) { m[name] = value }

func mustBuild(t *testing.T, b *Builder) *Policy {
	t.Helper()
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestHSTSValueCombinations(t *testing.T) {
	tests := []struct {
		name string
		hsts HSTSConfig
		want string
	}{
		{
			name: "max age only",
			hsts: HSTSConfig{Enabled: true, MaxAgeSeconds: 86400},
			want: "max-age=86400",
		},
		{
			name: "include subdomains",
			hsts: HSTSConfig{Enabled: true, MaxAgeSeconds: 31536000, IncludeSubDomains: true},
			want: "max-age=31536000; includeSubDomains",
		},
		{
			name: "preload only",
			hsts: HSTSConfig{Enabled: true, MaxAgeSeconds: 31536000, Preload: true},
			want: "max-age=31536000; preload",
		},
		{
			name: "subdomains then preload fixed order",
			hsts: HSTSConfig{Enabled: true, MaxAgeSeconds: 63072000, IncludeSubDomains: true, Preload: true},
			want: "max-age=63072000; includeSubDomains; preload",
		},
		{
			name: "zero max age still renders",
			hsts: HSTSConfig{Enabled: true, MaxAgeSeconds: 0},
			want: "max-age=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, New().WithHSTS(tt.hsts))
			h := headerMap{}
			p.Apply(h)
			if got := h[HeaderStrictTransportSecurity]; got != tt.want {
				t.Fatalf("HSTS value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHSTSDisabledNeverEmitted(t *testing.T) {
	p := mustBuild(t, New().WithHSTS(HSTSConfig{Enabled: false, MaxAgeSeconds: 31536000, IncludeSubDomains: true, Preload: true}))
	h := headerMap{}
	p.Apply(h)
	if _, ok := h[HeaderStrictTransportSecurity]; ok {
		t.Fatalf("Strict-Transport-Security emitted despite Enabled=false: %q", h[HeaderStrictTransportSecurity])
	}
}

func TestCSPSingleDirective(t *testing.T) {
	p := mustBuild(t, New().WithCSPDirectives(CSPDirectives{
		DefaultSrc: []string{"'self'"},
	}))
	h := headerMap{}
	p.Apply(h)
	if got, want := h[HeaderContentSecurityPolicy], "default-src 'self'"; got != want {
		t.Fatalf("CSP = %q, want %q", got, want)
	}
}

func TestCSPDefaultDirectiveOrder(t *testing.T) {
	p := mustBuild(t, New())
	h := headerMap{}
	p.Apply(h)

	want := "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"font-src 'self'; " +
		"connect-src 'self'; " +
		"frame-src 'none'; " +
		"object-src 'none'; " +
		"base-uri 'self'; " +
		"form-action 'self'; " +
		"frame-ancestors 'none'; " +
		"upgrade-insecure-requests"
	if got := h[HeaderContentSecurityPolicy]; got != want {
		t.Fatalf("CSP = %q, want %q", got, want)
	}
}

func TestCSPDisabledOmitted(t *testing.T) {
	disabled := false
	p := mustBuild(t, New().WithOptions(Options{CSP: &CSPOptions{Enabled: &disabled}}))
	h := headerMap{}
	p.Apply(h)
	if _, ok := h[HeaderContentSecurityPolicy]; ok {
		t.Fatal("Content-Security-Policy emitted despite Enabled=false")
	}
}

func TestCSPUpgradeInsecureRequestsBareDirective(t *testing.T) {
	p := mustBuild(t, New().WithCSPDirectives(CSPDirectives{
		DefaultSrc:              []string{"'none'"},
		UpgradeInsecureRequests: true,
	}))
	h := headerMap{}
	p.Apply(h)
	if got, want := h[HeaderContentSecurityPolicy], "default-src 'none'; upgrade-insecure-requests"; got != want {
		t.Fatalf("CSP = %q, want %q", got, want)
	}
}

func TestPermissionsPolicyOrderAndEmptyOrigins(t *testing.T) {
	p := mustBuild(t, New().WithPermissionsPolicy(PermissionsPolicy{
		{Feature: "camera"},
		{Feature: "geolocation", AllowedOrigins: []string{"'self'"}},
	}))
	h := headerMap{}
	p.Apply(h)
	if got, want := h[HeaderPermissionsPolicy], "camera=(), geolocation=('self')"; got != want {
		t.Fatalf("Permissions-Policy = %q, want %q", got, want)
	}
}

func TestPermissionsPolicyEmptyListOmitsHeader(t *testing.T) {
	p := mustBuild(t, New().WithPermissionsPolicy(PermissionsPolicy{}))
	h := headerMap{}
	p.Apply(h)
	if _, ok := h[HeaderPermissionsPolicy]; ok {
		t.Fatal("Permissions-Policy emitted for empty feature list")
	}
}

func TestCacheControlSuppression(t *testing.T) {
	tests := []struct {
		contentType string
		wantCache   bool
	}{
		{"image/png", false},
		{"image/svg+xml", false},
		{"font/woff2", false},
		{"text/css; charset=utf-8", false},
		{"application/javascript", false},
		{"text/javascript", false},
		{"text/html; charset=utf-8", true},
		{"application/json", true},
		{"", true},
	}

	p := mustBuild(t, New())
	for _, tt := range tests {
		name := tt.contentType
		if name == "" {
			name = "absent"
		}
		t.Run(name, func(t *testing.T) {
			h := headerMap{}
			if tt.contentType != "" {
				h.Set(HeaderContentType, tt.contentType)
			}
			p.Apply(h)

			_, gotCache := h[HeaderCacheControl]
			_, gotPragma := h[HeaderPragma]
			_, gotExpires := h[HeaderExpires]
			if gotCache != tt.wantCache || gotPragma != tt.wantCache || gotExpires != tt.wantCache {
				t.Fatalf("content type %q: cache trio = (%v, %v, %v), want all %v",
					tt.contentType, gotCache, gotPragma, gotExpires, tt.wantCache)
			}
			if tt.wantCache {
				if got, want := h[HeaderCacheControl], "no-store, no-cache, must-revalidate, proxy-revalidate"; got != want {
					t.Fatalf("Cache-Control = %q, want %q", got, want)
				}
				if got := h[HeaderPragma]; got != "no-cache" {
					t.Fatalf("Pragma = %q, want no-cache", got)
				}
				if got := h[HeaderExpires]; got != "0" {
					t.Fatalf("Expires = %q, want 0", got)
				}
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	p := mustBuild(t, New())

	once := headerMap{}
	p.Apply(once)

	twice := headerMap{}
	p.Apply(twice)
	p.Apply(twice)

	if len(once) != len(twice) {
		t.Fatalf("header count differs: once=%d twice=%d", len(once), len(twice))
	}
	for name, want := range once {
		if got := twice[name]; got != want {
			t.Fatalf("header %s = %q after double apply, want %q", name, got, want)
		}
	}
}

func TestApplyDefaultHeaderSet(t *testing.T) {
	p := mustBuild(t, New())
	h := headerMap{}
	p.Apply(h)

	want := map[string]string{
		HeaderStrictTransportSecurity: "max-age=31536000; includeSubDomains",
		HeaderXFrameOptions:           "DENY",
		HeaderXContentTypeOptions:     "nosniff",
		HeaderXXSSProtection:          "1; mode=block",
		HeaderReferrerPolicy:          "strict-origin-when-cross-origin",
		HeaderPermissionsPolicy:       "camera=(), microphone=(), geolocation=(), payment=(), usb=()",
		HeaderCrossOriginEmbedder:     "require-corp",
		HeaderCrossOriginOpener:       "same-origin",
		HeaderCrossOriginResource:     "same-origin",
		HeaderCacheControl:            "no-store, no-cache, must-revalidate, proxy-revalidate",
		HeaderPragma:                  "no-cache",
		HeaderExpires:                 "0",
	}
	for name, wantVal := range want {
		if got := h[name]; got != wantVal {
			t.Errorf("%s = %q, want %q", name, got, wantVal)
		}
	}
	if h[HeaderContentSecurityPolicy] == "" {
		t.Error("Content-Security-Policy missing from default header set")
	}
}

func TestApplyOmitsEmptyVerbatimHeaders(t *testing.T) {
	empty := ""
	p := mustBuild(t, New().WithOptions(Options{
		XFrameOptions:       &empty,
		XContentTypeOptions: &empty,
		XXSSProtection:      &empty,
		ReferrerPolicy:      &empty,
		CrossOrigin: &CrossOriginOptions{
			EmbedderPolicy: &empty,
			OpenerPolicy:   &empty,
			ResourcePolicy: &empty,
		},
		CacheControl: &empty,
	}))
	h := headerMap{}
	p.Apply(h)

	for _, name := range []string{
		HeaderXFrameOptions,
		HeaderXContentTypeOptions,
		HeaderXXSSProtection,
		HeaderReferrerPolicy,
		HeaderCrossOriginEmbedder,
		HeaderCrossOriginOpener,
		HeaderCrossOriginResource,
		HeaderCacheControl,
		HeaderPragma,
		HeaderExpires,
	} {
		if v, ok := h[name]; ok {
			t.Errorf("%s = %q, want omitted", name, v)
		}
	}
}

func BenchmarkApply(b *testing.B) {
	p, err := New().Build()
	if err != nil {
		b.Fatal(err)
	}
	h := headerMap{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Apply(h)
	}
}

func ExamplePolicy_Apply() {
	p, _ := New().WithPermissionsPolicy(PermissionsPolicy{
		{Feature: "camera"},
		{Feature: "geolocation", AllowedOrigins: []string{"'self'"}},
	}).Build()

	h := headerMap{}
	p.Apply(h)
	fmt.Println(h[HeaderPermissionsPolicy])
	// Output: camera=(), geolocation=('self')
}

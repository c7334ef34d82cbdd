package headwall

import "fmt"

// Config is the fully-resolved security header configuration.
//
// Config instances are intended to be configured during initialization and then
// treated as immutable. A Config is cloned on [Builder.Build], so mutating the
// caller's copy after build has no effect on a running [Policy].
type Config struct {
	HSTS                HSTSConfig
	CSP                 CSPConfig
	XFrameOptions       string
	XContentTypeOptions string
	XXSSProtection      string
	ReferrerPolicy      string
	PermissionsPolicy   PermissionsPolicy
	CrossOrigin         CrossOriginConfig
	CacheControl        string
}

/*
====================================
HSTS CONFIG
====================================
*/

// HSTSConfig controls the Strict-Transport-Security header.
type HSTSConfig struct {
	Enabled           bool
	MaxAgeSeconds     int
	IncludeSubDomains bool
	Preload           bool
}

/*
====================================
CSP CONFIG
====================================
*/

// CSPConfig controls the Content-Security-Policy header.
type CSPConfig struct {
	Enabled    bool
	Directives CSPDirectives
}

// CSPDirectives is the Content-Security-Policy directive set. Fields render in
// this fixed declaration order; a nil source list omits the directive entirely.
// UpgradeInsecureRequests is a bare directive with no value.
type CSPDirectives struct {
	DefaultSrc              []string `yaml:"defaultSrc"`
	ScriptSrc               []string `yaml:"scriptSrc"`
	StyleSrc                []string `yaml:"styleSrc"`
	ImgSrc                  []string `yaml:"imgSrc"`
	FontSrc                 []string `yaml:"fontSrc"`
	ConnectSrc              []string `yaml:"connectSrc"`
	FrameSrc                []string `yaml:"frameSrc"`
	ObjectSrc               []string `yaml:"objectSrc"`
	BaseURI                 []string `yaml:"baseUri"`
	FormAction              []string `yaml:"formAction"`
	FrameAncestors          []string `yaml:"frameAncestors"`
	UpgradeInsecureRequests bool     `yaml:"upgradeInsecureRequests"`
}

/*
====================================
PERMISSIONS POLICY
====================================
*/

// PermissionsDirective is one feature clause of the Permissions-Policy header.
// An empty AllowedOrigins list renders as "feature=()", blocking the feature
// everywhere.
type PermissionsDirective struct {
	Feature        string   `yaml:"feature"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// PermissionsPolicy is an ordered Permissions-Policy feature list. Declaration
// order is preserved in the emitted header, which is why this is a slice and
// not a map.
type PermissionsPolicy []PermissionsDirective

/*
====================================
CROSS-ORIGIN CONFIG
====================================
*/

// CrossOriginConfig controls the three cross-origin isolation headers. An empty
// value omits the corresponding header.
type CrossOriginConfig struct {
	EmbedderPolicy string `yaml:"embedderPolicy"`
	OpenerPolicy   string `yaml:"openerPolicy"`
	ResourcePolicy string `yaml:"resourcePolicy"`
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the hardened default header set. Every field of the
// returned value is independently overridable through [Options].
func DefaultConfig() Config {
	return Config{
		HSTS: HSTSConfig{
			Enabled:           true,
			MaxAgeSeconds:     31536000,
			IncludeSubDomains: true,
			Preload:           false,
		},
		CSP: CSPConfig{
			Enabled: true,
			Directives: CSPDirectives{
				DefaultSrc:              []string{"'self'"},
				ScriptSrc:               []string{"'self'", "'unsafe-inline'"},
				StyleSrc:                []string{"'self'", "'unsafe-inline'"},
				ImgSrc:                  []string{"'self'", "data:"},
				FontSrc:                 []string{"'self'"},
				ConnectSrc:              []string{"'self'"},
				FrameSrc:                []string{"'none'"},
				ObjectSrc:               []string{"'none'"},
				BaseURI:                 []string{"'self'"},
				FormAction:              []string{"'self'"},
				FrameAncestors:          []string{"'none'"},
				UpgradeInsecureRequests: true,
			},
		},
		XFrameOptions:       "DENY",
		XContentTypeOptions: "nosniff",
		XXSSProtection:      "1; mode=block",
		ReferrerPolicy:      "strict-origin-when-cross-origin",
		PermissionsPolicy: PermissionsPolicy{
			{Feature: "camera"},
			{Feature: "microphone"},
			{Feature: "geolocation"},
			{Feature: "payment"},
			{Feature: "usb"},
		},
		CrossOrigin: CrossOriginConfig{
			EmbedderPolicy: "require-corp",
			OpenerPolicy:   "same-origin",
			ResourcePolicy: "same-origin",
		},
		CacheControl: "no-store, no-cache, must-revalidate, proxy-revalidate",
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.CSP.Directives = cloneDirectives(cfg.CSP.Directives)
	out.PermissionsPolicy = clonePermissions(cfg.PermissionsPolicy)
	return out
}

func cloneDirectives(d CSPDirectives) CSPDirectives {
	out := d
	out.DefaultSrc = cloneStrings(d.DefaultSrc)
	out.ScriptSrc = cloneStrings(d.ScriptSrc)
	out.StyleSrc = cloneStrings(d.StyleSrc)
	out.ImgSrc = cloneStrings(d.ImgSrc)
	out.FontSrc = cloneStrings(d.FontSrc)
	out.ConnectSrc = cloneStrings(d.ConnectSrc)
	out.FrameSrc = cloneStrings(d.FrameSrc)
	out.ObjectSrc = cloneStrings(d.ObjectSrc)
	out.BaseURI = cloneStrings(d.BaseURI)
	out.FormAction = cloneStrings(d.FormAction)
	out.FrameAncestors = cloneStrings(d.FrameAncestors)
	return out
}

func clonePermissions(in PermissionsPolicy) PermissionsPolicy {
	if in == nil {
		return nil
	}
	out := make(PermissionsPolicy, len(in))
	for i, p := range in {
		out[i] = PermissionsDirective{
			Feature:        p.Feature,
			AllowedOrigins: cloneStrings(p.AllowedOrigins),
		}
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks build-time invariants. Validation runs once in
// [Builder.Build]; per-request application never validates and never fails.
func (c *Config) Validate() error {
	if c.HSTS.MaxAgeSeconds < 0 {
		return fmt.Errorf("%w: HSTS MaxAgeSeconds must be >= 0", ErrInvalidConfig)
	}
	switch c.XFrameOptions {
	case "", "DENY", "SAMEORIGIN":
	default:
		return fmt.Errorf("%w: XFrameOptions must be DENY, SAMEORIGIN, or empty", ErrInvalidConfig)
	}
	for _, p := range c.PermissionsPolicy {
		if p.Feature == "" {
			return fmt.Errorf("%w: PermissionsPolicy feature name must not be empty", ErrInvalidConfig)
		}
	}
	return nil
}

package headwall

// Options is the partial override object accepted by [Builder.WithOptions] and
// [OptionsFromYAML]. Every field is optional; nil fields fall back to the value
// in [DefaultConfig]. Nested objects merge per sub-field, with one exception:
// the CSP directive set and the Permissions-Policy feature list are replaced
// whole when provided — source lists are never merged element-wise.
type Options struct {
	HSTS                *HSTSOptions        `yaml:"hsts"`
	CSP                 *CSPOptions         `yaml:"csp"`
	XFrameOptions       *string             `yaml:"xFrameOptions"`
	XContentTypeOptions *string             `yaml:"xContentTypeOptions"`
	XXSSProtection      *string             `yaml:"xXssProtection"`
	ReferrerPolicy      *string             `yaml:"referrerPolicy"`
	PermissionsPolicy   PermissionsPolicy   `yaml:"permissionsPolicy"`
	CrossOrigin         *CrossOriginOptions `yaml:"crossOrigin"`
	CacheControl        *string             `yaml:"cacheControl"`
}

// HSTSOptions overrides individual Strict-Transport-Security fields.
type HSTSOptions struct {
	Enabled           *bool `yaml:"enabled"`
	MaxAgeSeconds     *int  `yaml:"maxAgeSeconds"`
	IncludeSubDomains *bool `yaml:"includeSubDomains"`
	Preload           *bool `yaml:"preload"`
}

// CSPOptions overrides the Content-Security-Policy. Providing Directives
// replaces the entire default directive set.
type CSPOptions struct {
	Enabled    *bool          `yaml:"enabled"`
	Directives *CSPDirectives `yaml:"directives"`
}

// CrossOriginOptions overrides individual cross-origin isolation headers.
type CrossOriginOptions struct {
	EmbedderPolicy *string `yaml:"embedderPolicy"`
	OpenerPolicy   *string `yaml:"openerPolicy"`
	ResourcePolicy *string `yaml:"resourcePolicy"`
}

// Resolve merges the options over [DefaultConfig] and returns the resulting
// configuration. Precedence is explicit per field: a nil pointer keeps the
// default, a non-nil pointer wins. The returned Config shares no slices with
// the Options value.
func (o Options) Resolve() Config {
	return o.resolveOver(DefaultConfig())
}

func (o Options) resolveOver(cfg Config) Config {
	if o.HSTS != nil {
		if o.HSTS.Enabled != nil {
			cfg.HSTS.Enabled = *o.HSTS.Enabled
		}
		if o.HSTS.MaxAgeSeconds != nil {
			cfg.HSTS.MaxAgeSeconds = *o.HSTS.MaxAgeSeconds
		}
		if o.HSTS.IncludeSubDomains != nil {
			cfg.HSTS.IncludeSubDomains = *o.HSTS.IncludeSubDomains
		}
		if o.HSTS.Preload != nil {
			cfg.HSTS.Preload = *o.HSTS.Preload
		}
	}
	if o.CSP != nil {
		if o.CSP.Enabled != nil {
			cfg.CSP.Enabled = *o.CSP.Enabled
		}
		if o.CSP.Directives != nil {
			cfg.CSP.Directives = cloneDirectives(*o.CSP.Directives)
		}
	}
	if o.XFrameOptions != nil {
		cfg.XFrameOptions = *o.XFrameOptions
	}
	if o.XContentTypeOptions != nil {
		cfg.XContentTypeOptions = *o.XContentTypeOptions
	}
	if o.XXSSProtection != nil {
		cfg.XXSSProtection = *o.XXSSProtection
	}
	if o.ReferrerPolicy != nil {
		cfg.ReferrerPolicy = *o.ReferrerPolicy
	}
	if o.PermissionsPolicy != nil {
		cfg.PermissionsPolicy = clonePermissions(o.PermissionsPolicy)
	}
	if o.CrossOrigin != nil {
		if o.CrossOrigin.EmbedderPolicy != nil {
			cfg.CrossOrigin.EmbedderPolicy = *o.CrossOrigin.EmbedderPolicy
		}
		if o.CrossOrigin.OpenerPolicy != nil {
			cfg.CrossOrigin.OpenerPolicy = *o.CrossOrigin.OpenerPolicy
		}
		if o.CrossOrigin.ResourcePolicy != nil {
			cfg.CrossOrigin.ResourcePolicy = *o.CrossOrigin.ResourcePolicy
		}
	}
	if o.CacheControl != nil {
		cfg.CacheControl = *o.CacheControl
	}
	return cfg
}

package headwall

// Builder assembles a [Policy] from defaults, partial option overrides, and
// explicit configuration. A Builder is single-use: Build fails on reuse so a
// finished Policy can never alias a builder that is still being mutated.
type Builder struct {
	cfg   Config
	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// WithConfig replaces the builder's configuration wholesale. The value is
// cloned, so later mutation of cfg by the caller does not leak into the build.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cloneConfig(cfg)
	return b
}

// WithOptions merges a partial override object over the builder's current
// configuration. Precedence follows [Options.Resolve]: nil fields keep the
// current value, non-nil fields win, directive and feature lists replace whole.
func (b *Builder) WithOptions(opts Options) *Builder {
	b.cfg = opts.resolveOver(b.cfg)
	return b
}

// WithHSTS replaces the Strict-Transport-Security configuration.
func (b *Builder) WithHSTS(hsts HSTSConfig) *Builder {
	b.cfg.HSTS = hsts
	return b
}

// WithCSPDirectives replaces the entire Content-Security-Policy directive set.
func (b *Builder) WithCSPDirectives(d CSPDirectives) *Builder {
	b.cfg.CSP.Directives = cloneDirectives(d)
	return b
}

// WithPermissionsPolicy replaces the Permissions-Policy feature list.
// Declaration order is preserved in the emitted header.
func (b *Builder) WithPermissionsPolicy(directives PermissionsPolicy) *Builder {
	b.cfg.PermissionsPolicy = clonePermissions(directives)
	return b
}

// Build validates the resolved configuration and returns the immutable Policy.
// All static header values are rendered here; nothing is computed per request
// beyond the Content-Type cache check.
func (b *Builder) Build() (*Policy, error) {
	if b.built {
		return nil, ErrBuilderReused
	}

	cfg := cloneConfig(b.cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b.built = true
	return newPolicy(cfg), nil
}

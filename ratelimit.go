package headwall

import "strconv"

// RateLimitConfig describes the advertised rate limit: Limit requests per
// WindowSeconds. The annotator performs no counting or storage — actual
// enforcement belongs to an external collaborator (edge proxy, gateway, or
// counter store) whose remaining budget may be passed through per request.
type RateLimitConfig struct {
	Limit         int `yaml:"limit"`
	WindowSeconds int `yaml:"windowSeconds"`
}

// RateLimitAnnotator writes the X-RateLimit-* advisory headers plus the static
// CF-Cache-Status: DYNAMIC marker. Stateless; values are rendered once at
// construction.
type RateLimitAnnotator struct {
	limitValue  string
	windowValue string
}

// NewRateLimitAnnotator validates the configuration and returns the annotator.
// Negative values fail fast here rather than degrading silently per request.
func NewRateLimitAnnotator(cfg RateLimitConfig) (*RateLimitAnnotator, error) {
	if cfg.Limit < 0 || cfg.WindowSeconds < 0 {
		return nil, ErrInvalidRateLimit
	}
	return &RateLimitAnnotator{
		limitValue:  strconv.Itoa(cfg.Limit),
		windowValue: strconv.Itoa(cfg.WindowSeconds),
	}, nil
}

// Annotate writes the limit and window headers without a remaining count.
func (a *RateLimitAnnotator) Annotate(h ResponseHeaders) {
	h.Set(HeaderRateLimitLimit, a.limitValue)
	h.Set(HeaderRateLimitWindow, a.windowValue)
	h.Set(HeaderCFCacheStatus, "DYNAMIC")
}

// AnnotateWithRemaining writes the limit and window headers plus the
// externally computed remaining budget.
func (a *RateLimitAnnotator) AnnotateWithRemaining(h ResponseHeaders, remaining int) {
	a.Annotate(h)
	h.Set(HeaderRateLimitRemaining, strconv.Itoa(remaining))
}

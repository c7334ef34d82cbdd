package headwall

import "errors"

var (
	// ErrInvalidConfig is returned by Build when a resolved configuration
	// violates a build-time invariant (negative HSTS max-age, unknown
	// X-Frame-Options value, unnamed Permissions-Policy feature).
	ErrInvalidConfig = errors.New("invalid header policy configuration")
	// ErrInvalidRateLimit is returned when a rate-limit annotation is
	// configured with a negative limit or window.
	ErrInvalidRateLimit = errors.New("invalid rate limit annotation")
	// ErrBuilderReused is returned when Build is called twice on one Builder.
	ErrBuilderReused = errors.New("builder already used")
)

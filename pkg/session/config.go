package session

import (
	"net/http"
	"time"
)

// Config holds session middleware configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "SESSION")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"SESSION"`

	// MaxAge is the session lifetime in seconds. Zero means no explicit
	// expiry: stored records never expire and the cookie lives for the
	// browser session.
	MaxAge int `env:"SESSION_MAX_AGE" envDefault:"0"`

	// CookiePath is the path attribute on the session cookie
	CookiePath string `env:"SESSION_COOKIE_PATH" envDefault:"/"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// SameSite is the SameSite attribute on the session cookie (2 = Lax)
	SameSite http.SameSite `env:"SESSION_SAME_SITE" envDefault:"2"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName: "SESSION",
		MaxAge:     0,
		CookiePath: "/",
		SameSite:   http.SameSiteLaxMode,
	}
}

// TTL returns MaxAge as a duration for store expiry, zero when no explicit
// expiry is configured.
func (c Config) TTL() time.Duration {
	if c.MaxAge <= 0 {
		return 0
	}
	return time.Duration(c.MaxAge) * time.Second
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

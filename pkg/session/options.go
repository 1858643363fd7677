package session

import (
	"log/slog"

	"github.com/dmitrymomot/webcore/pkg/cookie"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets a custom session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithMaxAge sets the session lifetime in seconds. Zero disables explicit
// expiry.
func WithMaxAge(seconds int) Option {
	return func(m *Manager) {
		m.config.MaxAge = seconds
	}
}

// WithCookieManager sets the cookie manager used to read and write the
// session cookie
func WithCookieManager(cookieMgr *cookie.Manager) Option {
	return func(m *Manager) {
		m.cookies = cookieMgr
	}
}

// WithLogger sets the logger used for load and flush failures
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithIDGenerator sets a custom identifier generator, mainly useful in tests
func WithIDGenerator(fn func() (string, error)) Option {
	return func(m *Manager) {
		if fn != nil {
			m.generateID = fn
		}
	}
}

package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/webcore/pkg/cookie"
)

// Manager couples a Store with the session cookie. It loads the session at
// request start and flushes it back before the response is committed.
type Manager struct {
	store      Store
	cookies    *cookie.Manager
	config     Config
	log        *slog.Logger
	generateID func() (string, error)
}

// New creates a new session manager with the given options
func New(opts ...Option) *Manager {
	m := &Manager{
		config:     DefaultConfig(),
		log:        slog.Default(),
		generateID: generateID,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(0)
	}

	if m.cookies == nil {
		m.cookies = cookie.New(
			cookie.WithPath(m.config.CookiePath),
			cookie.WithHTTPOnly(true),
			cookie.WithSameSite(m.config.SameSite),
			cookie.WithSecure(m.config.SecureCookies),
		)
	}

	return m
}

// Load builds the session for an incoming request. An absent cookie or a
// missing record yields a fresh session; a store connectivity failure is
// returned as-is so it cannot masquerade as a new session.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	id, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil || id == "" {
		return NewSession(), nil
	}

	data, err := m.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return NewSession(), nil
		}
		return nil, err
	}

	return restoreSession(id, data), nil
}

// Flush reconciles the session with the store and emits the response cookie.
// It must run before any response bytes are written.
//
// Three outcomes:
//   - invalidated (or drained to empty): the record is deleted and a
//     clearing cookie is sent
//   - changed with data: the record is saved, generating an identifier for
//     new sessions, and the cookie reflects the identifier and expiry
//   - untouched: no store write, no Set-Cookie; the client keeps whatever
//     cookie it sent
func (m *Manager) Flush(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	switch {
	case sess.Invalidated():
		if id := sess.ID(); id != "" {
			if err := m.store.Delete(ctx, id); err != nil {
				return err
			}
		}
		m.cookies.Delete(w, m.config.CookieName)

	case sess.Changed() && !sess.IsEmpty():
		id := sess.ID()
		if id == "" {
			var err error
			if id, err = m.generateID(); err != nil {
				return err
			}
			sess.id = id
		}
		if err := m.store.Save(ctx, id, sess.data, m.config.TTL()); err != nil {
			return err
		}
		if err := m.cookies.Set(w, m.config.CookieName, id, m.cookieOptions()...); err != nil {
			return err
		}
		sess.changed = false

	case sess.Changed() && sess.IsEmpty():
		// Every key was deleted by hand. A stored record only exists for a
		// non-empty flush, so drop the record instead of persisting {}.
		if id := sess.ID(); id != "" {
			if err := m.store.Delete(ctx, id); err != nil {
				return err
			}
			m.cookies.Delete(w, m.config.CookieName)
		}
	}

	return nil
}

// Delete removes the stored record for the request's session cookie and
// instructs the client to drop the cookie. Useful outside the middleware
// flow, e.g. in logout handlers.
func (m *Manager) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := m.cookies.Get(r, m.config.CookieName)
	if err == nil && id != "" {
		if err := m.store.Delete(ctx, id); err != nil {
			return err
		}
	}

	m.cookies.Delete(w, m.config.CookieName)
	return nil
}

// cookieOptions returns the cookie attributes for an active session cookie.
func (m *Manager) cookieOptions() []cookie.Option {
	opts := []cookie.Option{
		cookie.WithPath(m.config.CookiePath),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(m.config.SameSite),
	}

	if m.config.MaxAge > 0 {
		opts = append(opts, cookie.WithMaxAge(m.config.MaxAge))
	}

	if m.config.SecureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}

	return opts
}

// generateID creates an unguessable session identifier: 128 bits from
// crypto/rand, hex encoded.
func generateID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return hex.EncodeToString(b), nil
}

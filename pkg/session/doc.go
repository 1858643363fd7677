// Package session provides cookie-coupled HTTP session middleware backed by
// a pluggable key-value store. It tracks per-request session state with
// change detection, persists it as a JSON record in the configured backend
// and propagates the session identifier via an HttpOnly cookie.
//
// # Architecture
//
// A Manager orchestrates the session life-cycle. Its Middleware loads the
// session at request start, attaches it to the request context and flushes
// mutations back to the Store just before the response is committed. The
// Store interface abstracts persistence; in-memory, Redis and Memcached
// implementations ship out of the box.
//
//	┌────────┐  cookie   ┌────────────┐
//	│ Client │ ────────► │ Middleware │
//	└────────┘           └────────────┘
//	                           │ load / flush
//	                           ▼
//	                      ┌────────┐
//	                      │ Store  │ (memory, redis, memcached)
//	                      └────────┘
//
// # Lifecycle
//
// Each request owns exactly one Session. A request carrying no cookie, or a
// cookie whose record is missing, expired or corrupt, gets a fresh empty
// session with no identifier; the identifier is generated lazily on first
// flush so that a request which never touches its session leaves no storage
// footprint and sets no cookie. Invalidate deletes the stored record and
// emits a clearing cookie.
//
// # Usage
//
//	manager := session.New(
//	    session.WithStore(session.NewRedisStore(redisClient)),
//	    session.WithMaxAge(3600),
//	)
//
//	mux.Handle("/", manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    sess := session.MustFromContext(r.Context())
//	    sess.Set("visits", 1)
//	})))
//
// # Error Handling
//
// A missing record is never surfaced to handlers; store connectivity
// failures are, as 500 responses, so an unreachable backend cannot
// masquerade as a universe of fresh sessions. If a handler panics before
// writing its response, nothing is flushed and the panic propagates.
//
// # Known limitations
//
// Two concurrent requests sharing one identifier race at the store level and
// the last save wins; there is no optimistic locking or merge. Session data
// crosses a JSON round-trip, so numbers come back as float64 (GetInt papers
// over this for the common case).
package session

package session

import "maps"

// Session holds the key/value state for a single HTTP request. It is pure
// in-memory state: the middleware loads it from a Store before the handler
// runs and reconciles it back at the end of the request. A Session is owned
// exclusively by one request and must not be shared across goroutines that
// outlive it.
type Session struct {
	id          string
	data        map[string]any
	isNew       bool
	changed     bool
	invalidated bool
}

// NewSession creates a fresh, empty session with no identifier assigned.
// The middleware generates an identifier lazily on first flush.
func NewSession() *Session {
	return &Session{
		data:  make(map[string]any),
		isNew: true,
	}
}

// restoreSession rebuilds a session from a stored record.
func restoreSession(id string, data map[string]any) *Session {
	if data == nil {
		data = make(map[string]any)
	}
	return &Session{
		id:   id,
		data: data,
	}
}

// ID returns the session identifier. It is empty for a new session that has
// not been flushed yet.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// IsNew reports whether no stored record existed when the session was loaded.
func (s *Session) IsNew() bool {
	return s != nil && s.isNew
}

// Changed reports whether the session was mutated since it was loaded.
func (s *Session) Changed() bool {
	return s != nil && s.changed
}

// Invalidated reports whether Invalidate was called on the session.
func (s *Session) Invalidated() bool {
	return s != nil && s.invalidated
}

// Get retrieves a value from session data.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.data == nil {
		return nil, false
	}
	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string value from session data.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value from session data. JSON decoding stores
// numbers as float64, so numeric types are converted.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data.
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value in session data and marks the session changed.
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = value
	s.changed = true
}

// Delete removes a value from session data. Deleting an absent key still
// marks the session changed.
func (s *Session) Delete(key string) {
	if s == nil || s.data == nil {
		return
	}
	delete(s.data, key)
	s.changed = true
}

// Invalidate clears the session data and marks the session for deletion.
// The middleware deletes the stored record and instructs the client to drop
// the cookie instead of writing empty data.
func (s *Session) Invalidate() {
	if s == nil {
		return
	}
	s.data = make(map[string]any)
	s.changed = true
	s.invalidated = true
}

// Len returns the number of keys in the session.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// IsEmpty reports whether the session holds no data.
func (s *Session) IsEmpty() bool {
	return s.Len() == 0
}

// Keys returns the session keys in unspecified order.
func (s *Session) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Data returns a copy of the session data as a plain map, so callers can
// compare sessions by mapping equality without aliasing internal state.
func (s *Session) Data() map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s.data))
	maps.Copy(out, s.data)
	return out
}

package session

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory storage. Expired records are
// reaped lazily on Load and, when a cleanup interval is configured, by a
// background goroutine.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
	ticker  *time.Ticker
	done    chan struct{}
}

type memoryRecord struct {
	data      map[string]any
	expiresAt time.Time // zero means no expiry
}

func (r memoryRecord) expired(now time.Time) bool {
	return !r.expiresAt.IsZero() && now.After(r.expiresAt)
}

// NewMemoryStore creates a new in-memory session store. A cleanupInterval of
// zero disables the background reaper.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		records: make(map[string]memoryRecord),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Load retrieves the record for the given identifier.
func (m *MemoryStore) Load(ctx context.Context, id string) (map[string]any, error) {
	m.mu.RLock()
	record, exists := m.records[id]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	if record.expired(time.Now()) {
		m.mu.Lock()
		delete(m.records, id)
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	data := make(map[string]any, len(record.data))
	maps.Copy(data, record.data)
	return data, nil
}

// Save upserts the record for the given identifier.
func (m *MemoryStore) Save(ctx context.Context, id string, data map[string]any, ttl time.Duration) error {
	record := memoryRecord{
		data: make(map[string]any, len(data)),
	}
	maps.Copy(record.data, data)

	if ttl > 0 {
		record.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.records[id] = record
	m.mu.Unlock()
	return nil
}

// Delete removes the record for the given identifier.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.records, id)
	m.mu.Unlock()
	return nil
}

// DeleteExpired removes all expired records.
func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, record := range m.records {
		if record.expired(now) {
			delete(m.records, id)
		}
	}

	return nil
}

// Len returns the number of stored records, including not-yet-reaped expired
// ones.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Close stops the cleanup goroutine
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
	}
	return nil
}

// cleanupLoop runs periodic cleanup of expired records
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}

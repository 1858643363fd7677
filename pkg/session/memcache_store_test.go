package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMemcache stands in for *memcache.Client so the store contract can be
// exercised without a live memcached.
type fakeMemcache struct {
	items map[string]*memcache.Item
	err   error // returned from every call when set
}

func newFakeMemcache() *fakeMemcache {
	return &fakeMemcache{items: make(map[string]*memcache.Item)}
}

func (f *fakeMemcache) Get(key string) (*memcache.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return item, nil
}

func (f *fakeMemcache) Set(item *memcache.Item) error {
	if f.err != nil {
		return f.err
	}
	f.items[item.Key] = item
	return nil
}

func (f *fakeMemcache) Delete(key string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func TestMemcacheStore_RoundTrip(t *testing.T) {
	store := &MemcacheStore{client: newFakeMemcache()}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "id-1", map[string]any{"a": 1, "b": 12}, 0))

	data, err := store.Load(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(12)}, data)
}

func TestMemcacheStore_NotFound(t *testing.T) {
	store := &MemcacheStore{client: newFakeMemcache()}

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemcacheStore_MalformedRecord(t *testing.T) {
	fake := newFakeMemcache()
	fake.items["id-1"] = &memcache.Item{Key: "id-1", Value: []byte("{not json")}
	store := &MemcacheStore{client: fake}

	_, err := store.Load(context.Background(), "id-1")
	assert.ErrorIs(t, err, ErrSessionNotFound, "corrupt payload must fall open, not error out")
}

func TestMemcacheStore_SaveAppliesExpiration(t *testing.T) {
	fake := newFakeMemcache()
	store := &MemcacheStore{client: fake}

	require.NoError(t, store.Save(context.Background(), "id-1", map[string]any{"a": 1}, 10*time.Second))

	require.Contains(t, fake.items, "id-1")
	assert.Equal(t, int32(10), fake.items["id-1"].Expiration)
}

func TestMemcacheStore_DeleteIdempotent(t *testing.T) {
	store := &MemcacheStore{client: newFakeMemcache()}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "id-1", map[string]any{"a": 1}, 0))
	require.NoError(t, store.Delete(ctx, "id-1"))
	require.NoError(t, store.Delete(ctx, "id-1"), "a cache miss counts as success")

	_, err := store.Load(ctx, "id-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemcacheStore_Unavailable(t *testing.T) {
	fake := newFakeMemcache()
	fake.err = errors.New("connect: connection refused")
	store := &MemcacheStore{client: fake}
	ctx := context.Background()

	_, err := store.Load(ctx, "id-1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrSessionNotFound, "backend down must not look like a missing record")

	assert.ErrorIs(t, store.Save(ctx, "id-1", map[string]any{"a": 1}, 0), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Delete(ctx, "id-1"), ErrStoreUnavailable)
}

func TestMemcacheExpiration(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want int32
	}{
		{
			name: "no expiry",
			ttl:  0,
			want: 0,
		},
		{
			name: "negative treated as no expiry",
			ttl:  -time.Hour,
			want: 0,
		},
		{
			name: "one hour as relative seconds",
			ttl:  time.Hour,
			want: 3600,
		},
		{
			name: "thirty days boundary stays relative",
			ttl:  30 * 24 * time.Hour,
			want: 30 * 24 * 3600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := memcacheExpiration(tt.ttl); got != tt.want {
				t.Errorf("memcacheExpiration(%v) = %d, want %d", tt.ttl, got, tt.want)
			}
		})
	}
}

// Beyond thirty days memcached needs an absolute Unix timestamp.
func TestMemcacheExpiration_LongTTL(t *testing.T) {
	ttl := 60 * 24 * time.Hour
	want := time.Now().Add(ttl).Unix()

	got := int64(memcacheExpiration(ttl))
	if got < want-2 || got > want+2 {
		t.Errorf("memcacheExpiration(%v) = %d, want about %d", ttl, got, want)
	}
}

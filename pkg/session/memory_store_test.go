package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webcore/pkg/session"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "id-1", map[string]any{"a": 1}, 0))

	data, err := store.Load(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, data)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := session.NewMemoryStore(0)

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "id-1", map[string]any{"a": 1}, 0))
	require.NoError(t, store.Save(ctx, "id-1", map[string]any{"a": 2}, 0))

	data, err := store.Load(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 2}, data)
}

func TestMemoryStore_CopyIsolation(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	original := map[string]any{"a": 1}
	require.NoError(t, store.Save(ctx, "id-1", original, 0))

	original["a"] = 0 // caller keeps ownership of its map

	data, err := store.Load(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, data)

	data["b"] = 2 // and loaded maps don't alias the stored one

	again, err := store.Load(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, again)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "id-1", map[string]any{"a": 1}, 20*time.Millisecond))

	_, err := store.Load(ctx, "id-1")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = store.Load(ctx, "id-1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len(), "expired record should be reaped on load")
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "id-1", map[string]any{"a": 1}, 0))
	require.NoError(t, store.Delete(ctx, "id-1"))
	require.NoError(t, store.Delete(ctx, "id-1"))
	require.NoError(t, store.Delete(ctx, "never-existed"))

	_, err := store.Load(ctx, "id-1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "keep", map[string]any{"a": 1}, 0))
	require.NoError(t, store.Save(ctx, "drop", map[string]any{"b": 2}, time.Millisecond))

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, store.DeleteExpired(ctx))

	assert.Equal(t, 1, store.Len())

	_, err := store.Load(ctx, "keep")
	assert.NoError(t, err)
}

func TestMemoryStore_CleanupLoop(t *testing.T) {
	store := session.NewMemoryStore(10 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "drop", map[string]any{"a": 1}, time.Millisecond))

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_CloseIsSafe(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	require.NoError(t, store.Close())

	// Close with no cleanup goroutine configured
	store = session.NewMemoryStore(0)
	require.NoError(t, store.Close())
}

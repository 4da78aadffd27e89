package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string
	Name string
}

func recordID(r record) string { return r.ID }

func TestSnapshotRestoreExactState(t *testing.T) {
	cache := NewCache()
	key := Key{Resource: ResourceBookings}
	cache.Set(key, []record{{ID: "1", Name: "a"}})

	snap := cache.Snapshot(key)

	Prepend(cache, key, record{ID: "temp", Name: "optimistic"})
	list, ok := CachedList[record](cache, key)
	require.True(t, ok)
	require.Len(t, list, 2)

	cache.Restore(snap)

	list, ok = CachedList[record](cache, key)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)
}

func TestSnapshotRestoreDeletesAbsentKeys(t *testing.T) {
	cache := NewCache()
	key := Key{Resource: ResourceTransportBookings}

	// Key absent at snapshot time.
	snap := cache.Snapshot(key)

	Prepend(cache, key, record{ID: "temp"})
	_, ok := cache.Get(key)
	require.True(t, ok)

	cache.Restore(snap)

	// No residual placeholder survives the rollback.
	_, ok = cache.Get(key)
	assert.False(t, ok)
}

func TestReplaceByID(t *testing.T) {
	cache := NewCache()
	key := Key{Resource: ResourceBookings}
	cache.Set(key, []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}})

	replaced := ReplaceByID(cache, key, "2", record{ID: "2", Name: "updated"}, recordID)
	require.True(t, replaced)

	list, _ := CachedList[record](cache, key)
	assert.Equal(t, "updated", list[1].Name)
	assert.Equal(t, "a", list[0].Name)
}

func TestReplaceByIDMissReportsFalse(t *testing.T) {
	cache := NewCache()
	key := Key{Resource: ResourceBookings}
	cache.Set(key, []record{{ID: "1"}})

	assert.False(t, ReplaceByID(cache, key, "nope", record{ID: "nope"}, recordID))
	assert.False(t, ReplaceByID(cache, Key{Resource: ResourceFlights}, "1", record{ID: "1"}, recordID))
}

func TestReplaceByIDDoesNotMutateSnapshots(t *testing.T) {
	cache := NewCache()
	key := Key{Resource: ResourceBookings}
	cache.Set(key, []record{{ID: "1", Name: "a"}})

	snap := cache.Snapshot(key)
	ReplaceByID(cache, key, "1", record{ID: "1", Name: "patched"}, recordID)
	cache.Restore(snap)

	list, _ := CachedList[record](cache, key)
	assert.Equal(t, "a", list[0].Name)
}

func TestPrependCreatesListOnMiss(t *testing.T) {
	cache := NewCache()
	key := Key{Resource: ResourceMessages, ID: "b1"}

	Prepend(cache, key, record{ID: "1"})
	Prepend(cache, key, record{ID: "2"})

	list, ok := CachedList[record](cache, key)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "flights", Key{Resource: ResourceFlights}.String())
	assert.Equal(t, "messages:b1", Key{Resource: ResourceMessages, ID: "b1"}.String())
}

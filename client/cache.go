package client

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Resource names one cacheable collection.
type Resource string

const (
	ResourceTours             Resource = "tours"
	ResourceFlights           Resource = "flights"
	ResourceBookings          Resource = "bookings"
	ResourceCharterBookings   Resource = "charter_bookings"
	ResourceTransportBookings Resource = "transport_bookings"
	ResourceMessages          Resource = "messages"
	ResourceProfile           Resource = "profile"
)

// Key addresses one cache entry: a whole collection (empty ID) or a single
// record within it.
type Key struct {
	Resource Resource
	ID       string
}

func (k Key) String() string {
	if k.ID == "" {
		return string(k.Resource)
	}
	return string(k.Resource) + ":" + k.ID
}

const (
	defaultTTL      = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Cache is a typed facade over an expiring in-memory store. Booking
// mutations patch it optimistically and roll back from snapshots.
type Cache struct {
	store *gocache.Cache
}

func NewCache() *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (c *Cache) Set(key Key, value any) {
	c.store.Set(key.String(), value, gocache.DefaultExpiration)
}

func (c *Cache) Get(key Key) (any, bool) {
	return c.store.Get(key.String())
}

func (c *Cache) Invalidate(keys ...Key) {
	for _, key := range keys {
		c.store.Delete(key.String())
	}
}

// InvalidateResource drops the collection key and every id-scoped key under
// the resource, e.g. all per-booking message threads at once.
func (c *Cache) InvalidateResource(resource Resource) {
	prefix := string(resource)
	for stored := range c.store.Items() {
		if stored == prefix || strings.HasPrefix(stored, prefix+":") {
			c.store.Delete(stored)
		}
	}
}

// snapshotEntry remembers a value and whether the key existed at all, so a
// restore can delete entries that were absent before the mutation.
type snapshotEntry struct {
	key     Key
	value   any
	present bool
}

// Snapshot captures the exact state of the given keys.
type Snapshot struct {
	entries []snapshotEntry
}

func (c *Cache) Snapshot(keys ...Key) Snapshot {
	snap := Snapshot{entries: make([]snapshotEntry, len(keys))}
	for i, key := range keys {
		value, present := c.Get(key)
		snap.entries[i] = snapshotEntry{key: key, value: value, present: present}
	}
	return snap
}

// Restore puts every snapshotted key back exactly as captured.
func (c *Cache) Restore(snap Snapshot) {
	for _, e := range snap.entries {
		if e.present {
			c.Set(e.key, e.value)
		} else {
			c.store.Delete(e.key.String())
		}
	}
}

// CachedList reads a cached slice of T; a miss or a type mismatch both
// report absent.
func CachedList[T any](c *Cache, key Key) ([]T, bool) {
	value, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	list, ok := value.([]T)
	return list, ok
}

// Prepend puts item at the head of the cached list, creating the list on a
// cache miss.
func Prepend[T any](c *Cache, key Key, item T) {
	list, _ := CachedList[T](c, key)
	c.Set(key, append([]T{item}, list...))
}

// ReplaceByID swaps the first element whose id matches; reports whether a
// swap happened.
func ReplaceByID[T any](c *Cache, key Key, id string, item T, idOf func(T) string) bool {
	list, ok := CachedList[T](c, key)
	if !ok {
		return false
	}
	for i := range list {
		if idOf(list[i]) == id {
			next := make([]T, len(list))
			copy(next, list)
			next[i] = item
			c.Set(key, next)
			return true
		}
	}
	return false
}

// RemoveByID drops the first element whose id matches.
func RemoveByID[T any](c *Cache, key Key, id string, idOf func(T) string) bool {
	list, ok := CachedList[T](c, key)
	if !ok {
		return false
	}
	for i := range list {
		if idOf(list[i]) == id {
			next := make([]T, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			c.Set(key, next)
			return true
		}
	}
	return false
}

package store

import (
	"sort"
	"sync"

	"github.com/harfangapps/regis-kv/resp"
)

// hashShard is one stripe of the hash namespace.
type hashShard struct {
	mu   sync.RWMutex
	data map[string]map[string]resp.Frame
}

type shardedHashMap struct {
	shards []*hashShard
	mask   uint64
}

func newShardedHashMap(n int) *shardedHashMap {
	hm := &shardedHashMap{shards: make([]*hashShard, n), mask: uint64(n - 1)}
	for i := range hm.shards {
		hm.shards[i] = &hashShard{data: make(map[string]map[string]resp.Frame)}
	}
	return hm
}

func (hm *shardedHashMap) shardFor(key string) *hashShard {
	return hm.shards[shardIndex(key, hm.mask)]
}

// HGet returns field f of hash key, and false if the hash or field is
// absent.
func (s *Store) HGet(key, field string) (resp.Frame, bool) {
	shard := s.hashes.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	h, ok := shard.data[key]
	if !ok {
		return resp.Frame{}, false
	}
	v, ok := h[field]
	return v, ok
}

// HSet overwrites field f of hash key, creating the hash if it doesn't
// exist yet.
func (s *Store) HSet(key, field string, v resp.Frame) {
	shard := s.hashes.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	h, ok := shard.data[key]
	if !ok {
		h = make(map[string]resp.Frame)
		shard.data[key] = h
	}
	h[field] = v
}

// HashEntry is one field/value pair returned by HGetAll.
type HashEntry struct {
	Field string
	Value resp.Frame
}

// HGetAll returns a point-in-time snapshot of hash key's fields, and
// false if the hash is absent. If sorted, entries are ordered by field
// name; otherwise order is unspecified.
func (s *Store) HGetAll(key string, sorted bool) ([]HashEntry, bool) {
	shard := s.hashes.shardFor(key)
	shard.mu.RLock()
	h, ok := shard.data[key]
	if !ok {
		shard.mu.RUnlock()
		return nil, false
	}
	entries := make([]HashEntry, 0, len(h))
	for f, v := range h {
		entries = append(entries, HashEntry{Field: f, Value: v})
	}
	shard.mu.RUnlock()

	if sorted {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Field < entries[j].Field })
	}
	return entries, true
}

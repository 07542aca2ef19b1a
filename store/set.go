package store

import "sync"

// setShard is one stripe of the set namespace.
type setShard struct {
	mu   sync.RWMutex
	data map[string]map[string]struct{}
}

type shardedSetMap struct {
	shards []*setShard
	mask   uint64
}

func newShardedSetMap(n int) *shardedSetMap {
	sm := &shardedSetMap{shards: make([]*setShard, n), mask: uint64(n - 1)}
	for i := range sm.shards {
		sm.shards[i] = &setShard{data: make(map[string]map[string]struct{})}
	}
	return sm
}

func (sm *shardedSetMap) shardFor(key string) *setShard {
	return sm.shards[shardIndex(key, sm.mask)]
}

// SAdd adds member to set key, creating the set if it doesn't exist yet.
// It reports whether member was newly added.
func (s *Store) SAdd(key, member string) bool {
	shard := s.sets.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	set, ok := shard.data[key]
	if !ok {
		set = make(map[string]struct{})
		shard.data[key] = set
	}
	if _, present := set[member]; present {
		return false
	}
	set[member] = struct{}{}
	return true
}

// SIsMember reports whether member belongs to set key.
func (s *Store) SIsMember(key, member string) bool {
	shard := s.sets.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	set, ok := shard.data[key]
	if !ok {
		return false
	}
	_, present := set[member]
	return present
}

// SMembers returns a point-in-time snapshot of set key's members, and
// false if the set is absent. Order is unspecified.
func (s *Store) SMembers(key string) ([]string, bool) {
	shard := s.sets.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	set, ok := shard.data[key]
	if !ok {
		return nil, false
	}
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	return members, true
}

// Package store implements the concurrent in-memory backend: three
// disjoint namespaces (string, hash, set) keyed by UTF-8 strings, shared
// across connection handlers behind a cheap, cloneable handle.
package store

import (
	"hash/maphash"
	"sync"
)

// defaultShardCount is the number of stripes each namespace's map is
// split across. A power of 2 so shard selection is a mask, not a mod.
const defaultShardCount = 32

// Store is a cloneable handle to shared, sharded backend state. The zero
// value is not usable; construct with New.
type Store struct {
	strings *shardedMap
	hashes  *shardedHashMap
	sets    *shardedSetMap
}

// New returns an empty Store with the default shard count.
func New() *Store {
	return NewWithShards(defaultShardCount)
}

// NewWithShards returns an empty Store sharded into n stripes per
// namespace. n is rounded up to the next power of 2.
func NewWithShards(n int) *Store {
	n = nextPowerOfTwo(n)
	return &Store{
		strings: newShardedMap(n),
		hashes:  newShardedHashMap(n),
		sets:    newShardedSetMap(n),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// shardSeed is shared by every namespace's shard selector so a given key
// always lands on the same shard index across namespaces, which is
// incidental (the namespaces never compare indices) but keeps hashing
// cheap to reason about.
var shardSeed = maphash.MakeSeed()

func shardIndex(key string, mask uint64) uint64 {
	var h maphash.Hash
	h.SetSeed(shardSeed)
	h.WriteString(key)
	return h.Sum64() & mask
}

// stringShard is one stripe of the string namespace.
type stringShard struct {
	mu   sync.RWMutex
	data map[string]Value
}

type shardedMap struct {
	shards []*stringShard
	mask   uint64
}

func newShardedMap(n int) *shardedMap {
	sm := &shardedMap{shards: make([]*stringShard, n), mask: uint64(n - 1)}
	for i := range sm.shards {
		sm.shards[i] = &stringShard{data: make(map[string]Value)}
	}
	return sm
}

func (sm *shardedMap) shardFor(key string) *stringShard {
	return sm.shards[shardIndex(key, sm.mask)]
}

package store

import "github.com/harfangapps/regis-kv/resp"

// Value is the string-namespace payload: any frame, not just BulkString,
// since SET accepts whatever the client sends.
type Value = resp.Frame

// Get returns the string-namespace value for key, and false if absent.
func (s *Store) Get(key string) (Value, bool) {
	shard := s.strings.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	v, ok := shard.data[key]
	return v, ok
}

// Set overwrites the string-namespace value for key.
func (s *Store) Set(key string, v Value) {
	shard := s.strings.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.data[key] = v
}

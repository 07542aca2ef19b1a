package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// HGetAll is HGETALL key.
type HGetAll struct {
	key string
}

func parseHGetAll(args []resp.Frame) (Command, error) {
	if err := validateArity("hgetall", len(args), 1, false); err != nil {
		return nil, err
	}
	key, err := bulkStringText("hgetall", args[0])
	if err != nil {
		return nil, err
	}
	return HGetAll{key: key}, nil
}

// Execute returns the whole hash as a flat array [f1, v1, f2, v2, ...],
// or an empty array if the hash doesn't exist. Field order is not part
// of the wire contract; sorting is a concern of whoever consumes this
// for deterministic tests, not of the protocol.
func (c HGetAll) Execute(s *store.Store) resp.Frame {
	entries, ok := s.HGetAll(c.key, false)
	if !ok {
		return resp.Array(nil)
	}
	flat := make([]resp.Frame, 0, len(entries)*2)
	for _, e := range entries {
		flat = append(flat, resp.BulkStringFrom(e.Field), e.Value)
	}
	return resp.Array(flat)
}

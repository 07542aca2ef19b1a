package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// SMembers is SMEMBERS key.
type SMembers struct {
	key string
}

func parseSMembers(args []resp.Frame) (Command, error) {
	if err := validateArity("smembers", len(args), 1, false); err != nil {
		return nil, err
	}
	key, err := bulkStringText("smembers", args[0])
	if err != nil {
		return nil, err
	}
	return SMembers{key: key}, nil
}

// Execute returns the members of set key as an array of bulk strings,
// or an empty array if the set doesn't exist.
func (c SMembers) Execute(s *store.Store) resp.Frame {
	members, ok := s.SMembers(c.key)
	if !ok {
		return resp.Array(nil)
	}
	out := make([]resp.Frame, len(members))
	for i, m := range members {
		out[i] = resp.BulkStringFrom(m)
	}
	return resp.Array(out)
}

package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// Get is GET key.
type Get struct {
	key string
}

func parseGet(args []resp.Frame) (Command, error) {
	if err := validateArity("get", len(args), 1, false); err != nil {
		return nil, err
	}
	key, err := bulkStringText("get", args[0])
	if err != nil {
		return nil, err
	}
	return Get{key: key}, nil
}

// Execute returns the stored frame for key, or Null if absent.
func (c Get) Execute(s *store.Store) resp.Frame {
	v, ok := s.Get(c.key)
	if !ok {
		return resp.Null()
	}
	return v
}

package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// HGet is HGET key field.
type HGet struct {
	key   string
	field string
}

func parseHGet(args []resp.Frame) (Command, error) {
	if err := validateArity("hget", len(args), 2, false); err != nil {
		return nil, err
	}
	key, err := bulkStringText("hget", args[0])
	if err != nil {
		return nil, err
	}
	field, err := bulkStringText("hget", args[1])
	if err != nil {
		return nil, err
	}
	return HGet{key: key, field: field}, nil
}

// Execute returns field's value in hash key, or Null if absent.
func (c HGet) Execute(s *store.Store) resp.Frame {
	v, ok := s.HGet(c.key, c.field)
	if !ok {
		return resp.Null()
	}
	return v
}
